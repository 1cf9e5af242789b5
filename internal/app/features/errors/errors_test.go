package errors_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/dalemusser/tyte/internal/app/features/errors"
	"github.com/dalemusser/tyte/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteDetail(t *testing.T) {
	rec := testutil.NewRecorder()
	apierrors.WriteDetail(rec, http.StatusBadRequest, "Ce pseudo est déjà utilisé")

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertJSON(t)
	if got := rec.Detail(t); got != "Ce pseudo est déjà utilisé" {
		t.Errorf("detail = %q", got)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	rec := testutil.NewRecorder()
	apierrors.NotFound(rec, httptest.NewRequest("GET", "/nope", nil))
	rec.AssertStatus(t, http.StatusNotFound)
	if got := rec.Detail(t); got != "Not Found" {
		t.Errorf("detail = %q", got)
	}

	rec = testutil.NewRecorder()
	apierrors.MethodNotAllowed(rec, httptest.NewRequest("DELETE", "/api/users", nil))
	rec.AssertStatus(t, http.StatusMethodNotAllowed)
	if got := rec.Detail(t); got != "Method Not Allowed" {
		t.Errorf("detail = %q", got)
	}
}

func TestErrorLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	errLog := apierrors.NewErrorLogger(zap.New(core))
	req := httptest.NewRequest("POST", "/api/register", nil)
	cause := errors.New("connection refused")

	rec := testutil.NewRecorder()
	errLog.LogServerError(rec, req, "insert user failed", cause, cause.Error())
	rec.AssertStatus(t, http.StatusInternalServerError)
	if got := rec.Detail(t); got != "connection refused" {
		t.Errorf("detail = %q", got)
	}

	rec = testutil.NewRecorder()
	errLog.LogBadRequest(rec, req, "pseudo taken", cause, "taken")
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = testutil.NewRecorder()
	errLog.LogValidation(rec, req, errors.New("pseudo: field required"))
	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	if got := rec.Detail(t); got != "pseudo: field required" {
		t.Errorf("detail = %q", got)
	}

	if n := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); n != 1 {
		t.Errorf("error entries = %d, want 1", n)
	}
	entry := logs.FilterMessage("insert user failed").All()
	if len(entry) != 1 || entry[0].ContextMap()["path"] != "/api/register" {
		t.Errorf("missing path field on server error log: %+v", entry)
	}
}

func TestRecoverer(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := apierrors.Recoverer(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/status", nil))

	rec.AssertStatus(t, http.StatusInternalServerError)
	if got := rec.Detail(t); got != apierrors.GenericServerError {
		t.Errorf("detail = %q", got)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected panic to be logged")
	}
}

func TestRecoverer_ResponseAlreadyStarted(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := apierrors.Recoverer(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":"1"}`))
		panic("boom mid-stream")
	}))

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/users", nil))

	rec.AssertStatus(t, http.StatusOK)
	if got := rec.Body.String(); got != `[{"id":"1"}` {
		t.Errorf("body was appended to after panic: %q", got)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected panic to be logged")
	}
}
