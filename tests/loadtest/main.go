package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

var (
	baseURL      = flag.String("url", "http://127.0.0.1:18090", "skilld base url")
	numWorkers   = flag.Int("workers", 50, "concurrent workers")
	testDuration = flag.Duration("duration", 10*time.Second, "duration of each phase")
)

var (
	versions = []int{5, 6, 7, 8, 9, 10}
	tables   = []string{"gf-exist", "gf-new", "dm-exist", "dm-new"}
	columns  = []string{"name", "chart", "level", "skill", "percent"}
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	// Redirects are measured as their own request.
	CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	flag.Parse()
	fmt.Println("=== skilld Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", *numWorkers, *testDuration)

	fmt.Print("Waiting for server... ")
	players, err := waitForPlayers()
	if err != nil {
		fmt.Println("FAILED:", err)
		return
	}
	if len(players) == 0 {
		fmt.Println("FAILED: server has no players loaded")
		return
	}
	fmt.Printf("OK (%d players)\n", len(players))

	fmt.Println("\n--- Phase 1: JSON API, default sort ---")
	runPhase(func(rng *rand.Rand) result {
		return doGet("GET /api/players/{player}/skills", apiPath(pick(rng, players)), url.Values{
			"version": {fmt.Sprint(pick(rng, versions))},
		}, http.StatusOK)
	})

	fmt.Println("\n--- Phase 2: Mixed pages (50% HTML, 40% API with sorting, 10% select) ---")
	runPhase(func(rng *rand.Rand) result {
		player := pick(rng, players)
		r := rng.Float64()
		switch {
		case r < 0.50:
			return doGet("GET /players/{player}/skills", pagePath(player), randomSort(rng), http.StatusOK)
		case r < 0.90:
			return doGet("GET /api/players/{player}/skills", apiPath(player), randomSort(rng), http.StatusOK)
		default:
			q := url.Values{"version": {"10"}, "select": {fmt.Sprint(pick(rng, versions[:5]))}}
			return doGet("GET select", pagePath(player), q, http.StatusSeeOther)
		}
	})
}

func waitForPlayers() ([]string, error) {
	var lastErr error
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(*baseURL + "/api/players")
		if err == nil {
			var players []string
			err = json.NewDecoder(resp.Body).Decode(&players)
			resp.Body.Close()
			if err == nil {
				return players, nil
			}
		}
		lastErr = err
		time.Sleep(200 * time.Millisecond)
	}
	return nil, fmt.Errorf("server not responding: %w", lastErr)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func apiPath(player string) string {
	return "/api/players/" + url.PathEscape(player) + "/skills"
}

func pagePath(player string) string {
	return "/players/" + url.PathEscape(player) + "/skills"
}

func randomSort(rng *rand.Rand) url.Values {
	q := url.Values{"version": {fmt.Sprint(pick(rng, versions))}}
	table := pick(rng, tables)
	q.Set("sort."+table, pick(rng, columns))
	if rng.Intn(2) == 0 {
		q.Set("dir."+table, "asc")
	} else {
		q.Set("dir."+table, "desc")
	}
	return q
}

func doGet(endpoint, path string, q url.Values, want int) result {
	start := time.Now()
	resp, err := httpClient.Get(*baseURL + path + "?" + q.Encode())
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != want}
}

func runPhase(workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(*testDuration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, *testDuration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	slices.Sort(endpoints)

	fmt.Printf("\n  %-34s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 100))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		slices.Sort(s.latencies)
		fmt.Printf("  %-34s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 100))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(max(totalOps, 1))*100, rps)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
