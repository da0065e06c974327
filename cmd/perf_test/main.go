package main

import (
	"community_bbs/pkg/loadtest"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL for testing")
		testType    = flag.String("type", "read", "Test type: read, write, mixed")
		concurrency = flag.Int("concurrency", 50, "Concurrent workers")
		duration    = flag.Duration("duration", 30*time.Second, "Duration of each test")
		token       = flag.String("token", "", "Bearer token for write tests")
		nid         = flag.Int64("nid", 1, "Node used for listing and posting")
		maxTID      = flag.Int64("max-tid", 1000, "Upper bound of topic ids requested by detail tests")
	)
	flag.Parse()

	fmt.Println("🚀 BBS 帖子接口性能测试")
	fmt.Println("================================")

	api := loadtest.NewTopicAPI(*baseURL, *token)
	ctx := context.Background()

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := api.Health()(checkCtx); err != nil {
		log.Fatalf("❌ 服务器不可用: %s (%v)", *baseURL, err)
	}
	fmt.Printf("✅ 服务器可用: %s\n\n", *baseURL)

	var tests []*loadtest.PerformanceTest
	switch *testType {
	case "read":
		tests = append(tests, singleTest("hot_topics", *concurrency, *duration, api.HotTopics(*nid)))
		tests = append(tests, singleTest("recent_topics", *concurrency, *duration, api.RecentTopics(20)))
		tests = append(tests, singleTest("topic_detail", *concurrency, *duration, api.TopicDetail(*maxTID)))
	case "write", "mixed":
		if *token == "" {
			log.Fatal("❌ 写入测试需要 -token")
		}
		if *testType == "write" {
			tests = append(tests, singleTest("create_topic", *concurrency, *duration, api.CreateTopic(*nid)))
			break
		}
		mixed := loadtest.NewPerformanceTest("mixed", *concurrency, *duration)
		mixed.AddRequest(api.HotTopics(*nid))
		mixed.AddRequest(api.RecentTopics(20))
		mixed.AddRequest(api.TopicDetail(*maxTID))
		mixed.AddRequest(api.CreateTopic(*nid))
		tests = append(tests, mixed)
	default:
		fmt.Printf("❌ 未知的测试类型: %s\n", *testType)
		flag.Usage()
		os.Exit(1)
	}

	for _, t := range tests {
		t.Run(ctx).PrintResult()
	}
}

func singleTest(name string, concurrency int, duration time.Duration, req loadtest.RequestFunc) *loadtest.PerformanceTest {
	t := loadtest.NewPerformanceTest(name, concurrency, duration)
	t.AddRequest(req)
	return t
}
