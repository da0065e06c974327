package service

import (
	"community_bbs/internal/pkg/config"
	baseModel "community_bbs/pkg/model"
	"fmt"
	"math"
	"time"
)

// WeightStrategy 热度计算策略
type WeightStrategy interface {
	Weight(loves, favorites, comments, sinks, createTime int64, now time.Time) float64
}

// Coefficients 各项互动的加权系数
type Coefficients struct {
	Love     float64
	Favorite float64
	Comment  float64
	Sink     float64
}

// DefaultCoefficients 默认系数
var DefaultCoefficients = Coefficients{Love: 2, Favorite: 3, Comment: 1, Sink: 2}

func (c Coefficients) points(loves, favorites, comments, sinks int64) float64 {
	return c.Love*float64(loves) + c.Favorite*float64(favorites) + c.Comment*float64(comments) - c.Sink*float64(sinks)
}

// scaled 对数压缩，保留符号
func scaled(points float64) float64 {
	sign := 0.0
	switch {
	case points > 0:
		sign = 1
	case points < 0:
		sign = -1
	}
	return sign * math.Log10(math.Abs(points)+1)
}

// GravityStrategy 按发布时长衰减，需要定期全量刷新
//
//	score  = sign(p)*log10(|p|+1) + 1
//	weight = score / (ageHours + 2) ^ gravity    (score >= 0)
//	weight = score * (ageHours + 2) ^ gravity    (score < 0)
type GravityStrategy struct {
	Coefficients
	Gravity float64
}

func (s GravityStrategy) Weight(loves, favorites, comments, sinks, createTime int64, now time.Time) float64 {
	ageHours := float64(now.Unix()-createTime) / 3600
	if ageHours < 0 {
		ageHours = 0
	}
	score := scaled(s.points(loves, favorites, comments, sinks)) + 1
	decay := math.Pow(ageHours+2, s.Gravity)
	// 负分随时间继续下沉，保证权重随帖龄单调递减
	if score < 0 {
		return score * decay
	}
	return score / decay
}

// RedditStrategy 以固定起点计算，新帖天然排前，无需刷新
//
//	weight = sign(p)*log10(|p|+1) + (createTime - epoch) / 45000
type RedditStrategy struct {
	Coefficients
	Epoch int64
}

func (s RedditStrategy) Weight(loves, favorites, comments, sinks, createTime int64, now time.Time) float64 {
	return scaled(s.points(loves, favorites, comments, sinks)) + float64(createTime-s.Epoch)/45000
}

// WeightCalculator 计算帖子热度，同一时钟下结果确定
type WeightCalculator struct {
	strategy WeightStrategy
	now      baseModel.Clock
}

// NewWeightCalculator now 为空时使用系统时间
func NewWeightCalculator(strategy WeightStrategy, now baseModel.Clock) *WeightCalculator {
	if now == nil {
		now = time.Now
	}
	return &WeightCalculator{strategy: strategy, now: now}
}

// NewWeightCalculatorFromConfig 按配置选择策略，系数为 0 时取默认值
func NewWeightCalculatorFromConfig(cfg config.WeightConfig) (*WeightCalculator, error) {
	coef := Coefficients{Love: cfg.Love, Favorite: cfg.Favorite, Comment: cfg.Comment, Sink: cfg.Sink}
	if coef == (Coefficients{}) {
		coef = DefaultCoefficients
	}

	switch cfg.Strategy {
	case "", "gravity":
		gravity := cfg.Gravity
		if gravity <= 0 {
			gravity = 1.8
		}
		return NewWeightCalculator(GravityStrategy{Coefficients: coef, Gravity: gravity}, nil), nil
	case "reddit":
		return NewWeightCalculator(RedditStrategy{Coefficients: coef, Epoch: cfg.Epoch}, nil), nil
	default:
		return nil, fmt.Errorf("unknown weight strategy %q", cfg.Strategy)
	}
}

// Compute 缺失的计数由调用方传 0
func (c *WeightCalculator) Compute(loves, favorites, comments, sinks, createTime int64) float64 {
	return c.strategy.Weight(loves, favorites, comments, sinks, createTime, c.now())
}

// Now 计算器使用的当前时间 (unix 秒)
func (c *WeightCalculator) Now() int64 {
	return c.now().Unix()
}
