package ai

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiGenerator - Google Gemini üzerinden metin üretimi. Tüm hatalar
// loglanır ve sabit geri dönüş metniyle yutulur; bu istemci asla hata
// döndürmez.
type GeminiGenerator struct {
	client           *genai.Client
	descriptionModel string
	insightModel     string
}

func NewGeminiGenerator(ctx context.Context, apiKey, descriptionModel, insightModel string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "gemini istemcisi oluşturulamadı")
	}
	return &GeminiGenerator{
		client:           client,
		descriptionModel: descriptionModel,
		insightModel:     insightModel,
	}, nil
}

func (g *GeminiGenerator) GenerateDescription(ctx context.Context, productName, category string) string {
	prompt := fmt.Sprintf(`Aşağıdaki ürün için ilgi çekici bir ürün açıklaması yaz:
Ürün adı: %s
Kategori: %s
Lütfen 100 kelimeyi geçme.`, productName, category)

	return g.generate(ctx, g.descriptionModel, prompt, FallbackDescription)
}

func (g *GeminiGenerator) GenerateInsights(ctx context.Context, contextSummary string) string {
	prompt := fmt.Sprintf(`Sen deneyimli bir ERP iş danışmanısın. Aşağıdaki sistem verilerine göre derinlemesine analiz ve iyileştirme önerileri sun:

%s

Üç somut öneri ver.`, contextSummary)

	return g.generate(ctx, g.insightModel, prompt, FallbackInsight)
}

func (g *GeminiGenerator) generate(ctx context.Context, model, prompt, fallback string) string {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).WithField("model", model).Warn("Gemini çağrısı başarısız, sabit metin dönülüyor")
		return fallback
	}
	text := resp.Text()
	if text == "" {
		return fallback
	}
	return text
}
