package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rojanmagar2001/primeprobe/internal/domain"
)

func BenchmarkRun(b *testing.B) {
	mux := http.NewServeMux()
	mux.HandleFunc("/check-prime", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"isPrime": true}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	items := make([]domain.Item, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, domain.Item(fmt.Sprintf("%d", i)))
	}

	cfg := Config{
		BaseURL:   srv.URL + "/check-prime",
		Timeout:   2 * time.Second,
		UserAgent: "primeprobe-bench/0.1",
		Color:     "never",
		Items:     items,
	}

	ctx := context.Background()

	// Avoid measuring terminal output: write to buffers.
	var out bytes.Buffer
	var errOut bytes.Buffer

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		out.Reset()
		errOut.Reset()

		if err := Run(ctx, cfg, &out, &errOut); err != nil {
			b.Fatalf("Run error: %v", err)
		}
	}
}
