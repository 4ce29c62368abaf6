package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/aretw0/gitrs"
)

func main() {
	count := flag.Int("count", 1000, "Number of payloads to store")
	size := flag.Int("size", 4096, "Payload size in bytes")
	keep := flag.Bool("keep", false, "Keep the benchmark repository after running")
	flag.Parse()

	// 1. Setup Namespace
	benchDir, err := os.MkdirTemp("", "gitrs_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 2. Initialize Service
	service, err := gitrs.New(benchDir, gitrs.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	// Compressible payloads: random bytes defeat deflate and would only
	// measure the entropy source.
	payload := make([]byte, *size)
	rng := rand.New(rand.NewSource(42))
	for i := range payload {
		payload[i] = byte('a' + rng.Intn(16))
	}

	ctx := context.TODO()

	// 3. Upsert pass
	fmt.Printf("Storing %d payloads of %d bytes in %s...\n", *count, *size, benchDir)
	startUpsert := time.Now()
	for i := 0; i < *count; i++ {
		segments := []string{"objects", fmt.Sprintf("%02x", i%256), fmt.Sprintf("payload-%d", i)}
		if _, err := service.UpsertFile(ctx, payload, segments...); err != nil {
			panic(err)
		}
	}
	upsertDur := time.Since(startUpsert)
	fmt.Printf("Upsert pass: %v (%.0f ops/s)\n", upsertDur, float64(*count)/upsertDur.Seconds())

	// 4. Retrieve pass
	fmt.Println("Reading payloads back...")
	startRetrieve := time.Now()
	for i := 0; i < *count; i++ {
		segments := []string{"objects", fmt.Sprintf("%02x", i%256), fmt.Sprintf("payload-%d", i)}
		data, err := service.RetrieveFile(ctx, segments...)
		if err != nil {
			panic(err)
		}
		if len(data) != *size {
			panic(fmt.Sprintf("payload %d: got %d bytes, want %d", i, len(data), *size))
		}
	}
	retrieveDur := time.Since(startRetrieve)
	fmt.Printf("Retrieve pass: %v (%.0f ops/s)\n", retrieveDur, float64(*count)/retrieveDur.Seconds())

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d payloads x %d bytes):\n", *count, *size)
	fmt.Printf("  Upsert:   %v\n", upsertDur)
	fmt.Printf("  Retrieve: %v\n", retrieveDur)
	fmt.Printf("--------------------------------------------------\n")
}
