package loadtest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// RequestFunc 单次请求，返回 error 视为失败
type RequestFunc func(ctx context.Context) error

// PerformanceTest 固定并发数、固定时长的压测
type PerformanceTest struct {
	name        string
	concurrency int
	duration    time.Duration
	requests    []RequestFunc
	metrics     *testMetrics
}

type testMetrics struct {
	mu              sync.Mutex
	totalRequests   int64
	successRequests int64
	failedRequests  int64
	totalDuration   time.Duration
	responseTimes   []time.Duration
}

// NewPerformanceTest 创建性能测试
func NewPerformanceTest(name string, concurrency int, duration time.Duration) *PerformanceTest {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PerformanceTest{
		name:        name,
		concurrency: concurrency,
		duration:    duration,
		metrics:     &testMetrics{},
	}
}

// AddRequest 添加请求函数，多个请求轮流发送
func (pt *PerformanceTest) AddRequest(request RequestFunc) {
	pt.requests = append(pt.requests, request)
}

// Run 运行性能测试
func (pt *PerformanceTest) Run(ctx context.Context) *TestResult {
	ctx, cancel := context.WithTimeout(ctx, pt.duration)
	defer cancel()

	start := time.Now()
	requestChan := make(chan RequestFunc, pt.concurrency*2)

	var wg sync.WaitGroup
	for i := 0; i < pt.concurrency; i++ {
		wg.Add(1)
		go pt.worker(ctx, &wg, requestChan)
	}

	go func() {
		defer close(requestChan)
		for {
			for _, req := range pt.requests {
				select {
				case requestChan <- req:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	wg.Wait()
	return pt.result(time.Since(start))
}

func (pt *PerformanceTest) worker(ctx context.Context, wg *sync.WaitGroup, requestChan <-chan RequestFunc) {
	defer wg.Done()
	for request := range requestChan {
		if ctx.Err() != nil {
			return
		}
		pt.execute(ctx, request)
	}
}

func (pt *PerformanceTest) execute(ctx context.Context, request RequestFunc) {
	start := time.Now()
	err := request(ctx)
	cost := time.Since(start)

	// 超时截断的请求不计入
	if err != nil && ctx.Err() != nil {
		return
	}

	m := pt.metrics
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalRequests++
	m.totalDuration += cost
	m.responseTimes = append(m.responseTimes, cost)
	if err != nil {
		m.failedRequests++
	} else {
		m.successRequests++
	}
}

func (pt *PerformanceTest) result(elapsed time.Duration) *TestResult {
	m := pt.metrics
	m.mu.Lock()
	defer m.mu.Unlock()

	result := &TestResult{
		TestName:        pt.name,
		Concurrency:     pt.concurrency,
		Duration:        elapsed,
		TotalRequests:   m.totalRequests,
		SuccessRequests: m.successRequests,
		FailedRequests:  m.failedRequests,
	}
	if m.totalRequests == 0 {
		return result
	}

	result.QPS = float64(m.totalRequests) / elapsed.Seconds()
	result.SuccessRate = float64(m.successRequests) / float64(m.totalRequests)
	result.ErrorRate = float64(m.failedRequests) / float64(m.totalRequests)

	sorted := make([]time.Duration, len(m.responseTimes))
	copy(sorted, m.responseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	result.AverageResponseTime = m.totalDuration / time.Duration(len(sorted))
	result.MinResponseTime = sorted[0]
	result.MaxResponseTime = sorted[len(sorted)-1]
	result.P50 = percentile(sorted, 0.5)
	result.P95 = percentile(sorted, 0.95)
	result.P99 = percentile(sorted, 0.99)
	return result
}

// percentile times 需已排序
func percentile(times []time.Duration, p float64) time.Duration {
	if len(times) == 0 {
		return 0
	}
	index := int(float64(len(times)) * p)
	if index >= len(times) {
		index = len(times) - 1
	}
	return times[index]
}

// TestResult 测试结果
type TestResult struct {
	TestName            string        `json:"test_name"`
	Concurrency         int           `json:"concurrency"`
	Duration            time.Duration `json:"duration"`
	TotalRequests       int64         `json:"total_requests"`
	SuccessRequests     int64         `json:"success_requests"`
	FailedRequests      int64         `json:"failed_requests"`
	QPS                 float64       `json:"qps"`
	SuccessRate         float64       `json:"success_rate"`
	ErrorRate           float64       `json:"error_rate"`
	AverageResponseTime time.Duration `json:"average_response_time"`
	MinResponseTime     time.Duration `json:"min_response_time"`
	MaxResponseTime     time.Duration `json:"max_response_time"`
	P50                 time.Duration `json:"p50"`
	P95                 time.Duration `json:"p95"`
	P99                 time.Duration `json:"p99"`
}

// PrintResult 打印测试结果
func (tr *TestResult) PrintResult() {
	fmt.Printf("📊 性能测试结果: %s\n", tr.TestName)
	fmt.Printf("================================\n")
	fmt.Printf("并发数: %d\n", tr.Concurrency)
	fmt.Printf("测试时长: %v\n", tr.Duration.Round(time.Millisecond))
	fmt.Printf("总请求数: %d\n", tr.TotalRequests)
	fmt.Printf("成功请求: %d\n", tr.SuccessRequests)
	fmt.Printf("失败请求: %d\n", tr.FailedRequests)
	fmt.Printf("QPS: %.2f\n", tr.QPS)
	fmt.Printf("成功率: %.2f%%\n", tr.SuccessRate*100)
	fmt.Printf("平均响应时间: %v\n", tr.AverageResponseTime)
	fmt.Printf("P50: %v  P95: %v  P99: %v\n", tr.P50, tr.P95, tr.P99)
	fmt.Printf("================================\n")
}
