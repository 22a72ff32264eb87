package ai

import "context"

// StaticGenerator - API anahtarı tanımlı olmayan ortamlar ve testler için
// sabit metin dönen üretici.
type StaticGenerator struct{}

func (StaticGenerator) GenerateDescription(ctx context.Context, productName, category string) string {
	return FallbackDescription
}

func (StaticGenerator) GenerateInsights(ctx context.Context, contextSummary string) string {
	return FallbackInsight
}
