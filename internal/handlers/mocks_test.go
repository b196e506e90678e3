package handlers

import (
	"html/template"

	"github.com/josep-prog-lab/payment-platform/internal/models"

	"github.com/gin-gonic/gin"
)

type mockIngestService struct {
	ingestFunc func(string) (*models.ExtractionSummary, error)
}

func (m *mockIngestService) Ingest(rawText string) (*models.ExtractionSummary, error) {
	return m.ingestFunc(rawText)
}

type mockVerificationService struct {
	verifyFunc func(*models.VerifyRequest) (*models.VerificationOutcome, error)
}

func (m *mockVerificationService) Verify(req *models.VerifyRequest) (*models.VerificationOutcome, error) {
	return m.verifyFunc(req)
}

// newTestRouter returns a gin engine in test mode with the verification
// template preloaded.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl := template.Must(template.New("verify_payment.html").Parse(
		`<form>verify</form>` +
			`{{if .ResultMessage}}<div class="{{.ResultStatus}}">{{.ResultMessage}}</div>{{end}}` +
			`{{if .VerifiedAmount}}<span>{{.VerifiedAmount}} RWF</span>{{end}}`,
	))
	router.SetHTMLTemplate(tmpl)

	return router
}
