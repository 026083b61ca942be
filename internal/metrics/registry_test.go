package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ObserveOperation(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	r.ObserveOperation("mul", "karatsuba", 3*time.Millisecond, 120, nil)
	r.ObserveOperation("mul", "karatsuba", 5*time.Millisecond, 130, nil)
	r.ObserveOperation("quo", "single-digit", 0, 1, errors.New("division by zero"))

	require.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("mul", "karatsuba", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("quo", "single-digit", "error")))
	require.Equal(t, 2, testutil.CollectAndCount(r.operandDigits))
}

func TestRegistry_NilIsNoop(t *testing.T) {
	t.Parallel()
	var r *Registry
	r.ObserveOperation("add", "linear", time.Millisecond, 1, nil)
}

func TestRegistry_Handler(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.ObserveOperation("add", "linear", time.Microsecond, 4, nil)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, want := range []string{
		"bigcalc_operations_total",
		"bigcalc_operation_duration_seconds",
		"bigcalc_heap_alloc_bytes",
		"bigcalc_system_memory_percent",
		"go_goroutines",
	} {
		require.True(t, strings.Contains(body, want), "missing %s", want)
	}
}
