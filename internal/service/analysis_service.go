package service

import (
	"github.com/keyvan-m/nftlens/internal/analysis"
)

// AnalysisService sits between the transport layer and the generator. It
// owns the default contract used by the parameterless dashboard endpoint.
type AnalysisService struct {
	generator       *analysis.Generator
	defaultContract string
}

func NewAnalysisService(generator *analysis.Generator, defaultContract string) *AnalysisService {
	return &AnalysisService{
		generator:       generator,
		defaultContract: defaultContract,
	}
}

// Analyze returns the synthetic record for the given contract address.
func (as *AnalysisService) Analyze(address string) *analysis.AnalysisRecord {
	return as.generator.Generate(address)
}

// AnalyzeDefault returns the record for the configured default contract.
func (as *AnalysisService) AnalyzeDefault() *analysis.AnalysisRecord {
	return as.generator.Generate(as.defaultContract)
}

// DefaultContract exposes the configured default address.
func (as *AnalysisService) DefaultContract() string {
	return as.defaultContract
}
