package ai

import "context"

// Üretim başarısız olduğunda dönen sabit metinler. Çağıran taraf hata değil,
// her zaman kullanılabilir bir metin alır.
const (
	FallbackDescription = "Açıklama üretilemedi, lütfen API anahtarını kontrol edin."
	FallbackInsight     = "Analiz şu anda üretilemiyor, lütfen daha sonra tekrar deneyin."
)

// Generator - Dışarıdaki metin üretim servisinin soyutlaması. Her iki çağrı
// da en-iyi-çaba esaslıdır: başarısızlıkta hata yerine sabit bir geri dönüş
// metni döner, çağıran başarıyı varsaymamalıdır.
type Generator interface {
	// GenerateDescription - Ürün adı ve kategorisinden kısa bir ürün
	// açıklaması üretir.
	GenerateDescription(ctx context.Context, productName, category string) string

	// GenerateInsights - Çağıranın derlediği küçük düz metin özetinden
	// (stok seviyeleri, sipariş sayıları, işlem toplamı) iş analizi üretir.
	GenerateInsights(ctx context.Context, contextSummary string) string
}
