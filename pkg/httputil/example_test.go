package httputil_test

import (
	"fmt"
	"net/http"

	"github.com/matzehuels/pydepsync/pkg/httputil"
)

func ExampleIsRetryableStatus() {
	for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusForbidden, http.StatusTooManyRequests, http.StatusBadGateway} {
		fmt.Println(code, httputil.IsRetryableStatus(code))
	}
	// Output:
	// 200 false
	// 404 false
	// 403 true
	// 429 true
	// 502 true
}
