package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/dto"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Code         string
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	CodeCounts         map[string]int
	UserStats          map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// TradeScenario defines an order shape sent to the saga
type TradeScenario struct {
	Name  string
	Side  string
	Price string
	Size  string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of trades to submit")
	usersStr := flag.String("u", "", "Comma-separated wallet addresses to distribute load across")
	marketID := flag.String("market", "", "Condition ID of the market to trade")
	tokenID := flag.String("token", "", "Outcome token ID to buy")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	replay := flag.Float64("replay", 0.1, "Fraction of trades re-sent with a used idempotency key")
	flag.Parse()

	var users []string
	for _, u := range strings.Split(*usersStr, ",") {
		if u = strings.TrimSpace(u); u != "" {
			users = append(users, u)
		}
	}
	if len(users) == 0 || *marketID == "" || *tokenID == "" {
		fmt.Println("usage: trade-load-test -u 0xabc...,0xdef... -market <conditionId> -token <tokenId>")
		return
	}

	scenarios := []TradeScenario{
		{"Yes Small", "yes", "0.45", "2"},
		{"Yes Large", "yes", "0.55", "10"},
		{"No Small", "no", "0.30", "3"},
		{"No Large", "no", "0.62", "8"},
	}

	fmt.Printf("Load testing trade saga across %d users\n", len(users))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d (replay fraction %.2f)\n", *totalRequests, *replay)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		CodeCounts:      make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		UserStats:       make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(3 * time.Minute).
		SetHeader("Content-Type", "application/json")

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var usedKeys sync.Map
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}

				user := users[rand.Intn(len(users))]
				scenario := scenarios[rand.Intn(len(scenarios))]

				stats.Lock.Lock()
				stats.UserStats[user]++
				stats.ScenarioStats[scenario.Name]++
				stats.Lock.Unlock()

				key := uuid.NewString()
				if rand.Float64() < *replay {
					if prev, ok := usedKeys.Load(user); ok {
						key = prev.(string)
					}
				}
				usedKeys.Store(user, key)

				results <- submitTrade(client, dto.TradeRequest{
					UserID:         user,
					MarketID:       *marketID,
					TokenID:        *tokenID,
					Side:           scenario.Side,
					Price:          decimal.RequireFromString(scenario.Price),
					Size:           decimal.RequireFromString(scenario.Size),
					IdempotencyKey: key,
				})
			}
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
			}
			stats.CodeCounts[result.Code]++
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d trades completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-done
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func submitTrade(client *resty.Client, req dto.TradeRequest) TestResult {
	var failure dto.ErrorResponse

	start := time.Now()
	resp, err := client.R().
		SetBody(req).
		SetError(&failure).
		Post("/api/trades")
	elapsed := time.Since(start)

	if err != nil {
		return TestResult{ResponseTime: elapsed, Code: "transport_error"}
	}

	result := TestResult{
		ResponseTime: elapsed,
		StatusCode:   resp.StatusCode(),
		Success:      resp.IsSuccess(),
		Code:         "ok",
	}
	if !result.Success {
		result.Code = failure.Error
		if result.Code == "" {
			result.Code = fmt.Sprintf("http_%d", resp.StatusCode())
		}
	}
	return result
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		p50 = sorted[len(sorted)*50/100]
		p90 = sorted[len(sorted)*90/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Trades:        %d\n", stats.TotalRequests)
	fmt.Printf("Filled:              %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed:              %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Filled TPS:          %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- USER DISTRIBUTION -----------------")
	for user, count := range stats.UserStats {
		fmt.Printf("%s: %d trades\n", user, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d trades\n", scenario, count)
	}

	// duplicate_trade is expected for replayed keys; anything 5xx needs a look at the reconciliation ledger
	fmt.Println("\n----------------- RESULT CODES -----------------")
	for code, count := range stats.CodeCounts {
		fmt.Printf("%-25s: %d (%.1f%%)\n", code, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}
	fmt.Println("================================================")
}
