package httpsrv

import (
	"fmt"
	"net/http"
)

// ProgressFunc reports how many watch list entries were notified out of the total.
type ProgressFunc func() (notified, total int)

func healthHandler(progress ProgressFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		if progress == nil {
			_, _ = w.Write([]byte("OK"))
			return
		}

		notified, total := progress()
		_, _ = fmt.Fprintf(w, "OK %d/%d", notified, total)
	}
}
