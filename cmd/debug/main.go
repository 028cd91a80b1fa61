// Developer tool: generate and print the analysis record for an address
// without running the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/keyvan-m/nftlens/configs"
	"github.com/keyvan-m/nftlens/internal/analysis"
)

func main() {
	addressFlag := flag.String("address", configs.DefaultContractAddress, "contract address to analyze")
	flag.Parse()

	if !analysis.IsValidAddress(*addressFlag) {
		fmt.Printf("Warning: %q is not a well-formed contract address; generating anyway\n", *addressFlag)
	}

	record := analysis.NewGenerator().Generate(*addressFlag)

	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Printf("Error: failed to encode record: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(encoded))
}
