package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/store/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/store/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	return r
}

func serve(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	r := newEngine(RequestLogger(log))

	serve(r, "/store/products?page=2")
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/store/products", entry.Data["route"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])

	serve(r, "/store/missing")
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRateLimiter_NilClientPassesThrough(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	r := newEngine(RateLimiter(nil, 1, time.Minute, log))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, "/store/products").Code)
	}
}

func TestPrometheusMiddleware_CountsByRoute(t *testing.T) {
	r := newEngine(PrometheusMiddleware())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/store/products", "200"))
	serve(r, "/store/products")
	serve(r, "/store/products")
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/store/products", "200"))

	assert.Equal(t, 2.0, after-before)
}

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(catalogOperations.WithLabelValues("browse", "error"))
	RecordCatalogOperation("browse", false)
	assert.Equal(t, 1.0, testutil.ToFloat64(catalogOperations.WithLabelValues("browse", "error"))-before)

	unknown := testutil.ToFloat64(unknownSortKeys)
	RecordUnknownSortKey()
	assert.Equal(t, 1.0, testutil.ToFloat64(unknownSortKeys)-unknown)

	misses := testutil.ToFloat64(catalogCacheLookups.WithLabelValues("miss"))
	RecordCacheLookup(false)
	assert.Equal(t, 1.0, testutil.ToFloat64(catalogCacheLookups.WithLabelValues("miss"))-misses)
}
