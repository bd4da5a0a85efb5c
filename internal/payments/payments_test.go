package payments

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kaushals1950/DhaaraAI/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() http.Handler {
	svc := NewService(NewFixtureRepository(FixturePaymentMethods(), FixtureTransactions(), FixtureEscrowAccounts()), time.UTC)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	NewHandler(svc, validation.New(), slog.New(slog.NewJSONHandler(io.Discard, nil))).Routes(r)
	return r
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestListPaymentMethods(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/payments/methods", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		PaymentMethods []PaymentMethod `json:"paymentMethods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.PaymentMethods, 3)
	assert.True(t, body.PaymentMethods[0].IsDefault)
	assert.Equal(t, "Chase Bank", body.PaymentMethods[2].BankName)
}

func TestAddCardMethod(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/methods",
		`{"type":"card","cardNumber":"4242 4242 4242 4242","expiryMonth":11,"expiryYear":2027,"cvc":"123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body AddMethodResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.PaymentMethodID, "pm_"))
	assert.Equal(t, "Payment method added successfully", body.Message)
}

func TestAddCardMethodRejectsBadNumber(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/methods",
		`{"type":"card","cardNumber":"4242424242424241","expiryMonth":11,"expiryYear":2027}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","details":{"cardNumber":"cardnumber"}}`, rec.Body.String())
}

func TestAddCardMethodRequiresCardFields(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/methods", `{"type":"card"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","details":{"cardNumber":"required","expiryMonth":"required","expiryYear":"required"}}`, rec.Body.String())
}

func TestAddCardMethodRejectsExpiredCard(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/methods",
		`{"type":"card","cardNumber":"4111111111111111","expiryMonth":5,"expiryYear":2025}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expiryYear":"expired"`)
}

func TestAddCardMethodRejectsMonthOutOfRange(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/methods",
		`{"type":"card","cardNumber":"4111111111111111","expiryMonth":13,"expiryYear":2027}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expiryMonth":"max"`)
}

func TestAddBankAccountMethod(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/methods", `{"type":"bank_account","bankAccount":"000123456789"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(newRouter(), http.MethodPost, "/payments/methods", `{"type":"bank_account"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bankAccount":"required"`)
}

func TestProcessPayment(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/process",
		`{"amount":150,"paymentMethodId":"pm_1","description":"NDA template","lawyerId":"7"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["escrowId"])
	assert.Contains(t, body, "escrowId")
	assert.Equal(t, float64(150), body["amount"])
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "Payment processed successfully", body["message"])
	assert.True(t, strings.HasPrefix(body["transactionId"].(string), "txn_"))
}

func TestProcessPaymentIntoEscrow(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/process",
		`{"amount":2500,"paymentMethodId":"pm_2","lawyerId":"1","escrow":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body ProcessResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.EscrowID)
	assert.True(t, strings.HasPrefix(*body.EscrowID, "esc_"))
	assert.Equal(t, "Payment processed and funds held in escrow", body.Message)
}

func TestProcessPaymentValidation(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/payments/process", `{"amount":0,"paymentMethodId":"pm_1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","details":{"amount":"gt"}}`, rec.Body.String())
}

func TestListTransactions(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/payments/transactions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Transactions []Transaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Transactions, 3)
	assert.Equal(t, "2024-01-22", body.Transactions[0].EscrowReleaseDate)
}

func TestListEscrowAccounts(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/escrow", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		EscrowAccounts []EscrowAccount `json:"escrowAccounts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.EscrowAccounts, 2)
	assert.Len(t, body.EscrowAccounts[0].Milestones, 3)
	assert.Equal(t, "pending_release", body.EscrowAccounts[1].Status)
}

func TestReleaseMilestone(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/escrow/release", `{"escrowId":"esc_001","milestoneId":"m2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body ReleaseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(600), body.ReleaseAmount)
	assert.Equal(t, "released", body.Status)
	assert.Equal(t, "Milestone payment released successfully", body.Message)
}

func TestReleaseFullEscrow(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/escrow/release", `{"escrowId":"esc_002"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body ReleaseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(3500), body.ReleaseAmount)
	assert.Equal(t, "Full escrow amount released successfully", body.Message)
}

func TestReleaseRequiresEscrowID(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/escrow/release", `{"milestoneId":"m1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"escrowId":"notblank"`)
}
