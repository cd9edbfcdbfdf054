package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	th := newTestHandler(t, nil, nil)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	rr := doRequest(t, th.Init(), http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestGetServerVersion_NotRateLimited(t *testing.T) {
	th := newTestHandler(t, nil, nil)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1").Times(5)

	router := th.Init()
	for i := 0; i < 5; i++ {
		rr := doRequest(t, router, http.MethodGet, "/api/version", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
