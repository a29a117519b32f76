package ranking

import (
	"math"
	"sort"
	"time"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
)

// 打分各项权重。
const (
	titleOverlapWeight = 0.3
	sameChannelPenalty = -0.2
	otherChannelBonus  = 0.1
	popularityCap      = 0.4
	engagementCap      = 0.2
	viralViewThreshold = 1_000_000
	viralBonus         = 0.3
	jitterRange        = 0.1
	hoursPerDay        = 24
)

// ScoreBreakdown 拆分打分中的每一项，便于逐项校验。
type ScoreBreakdown struct {
	TitleOverlap     float64
	ChannelDiversity float64
	Duration         float64
	Popularity       float64
	Engagement       float64
	Recency          float64
	Jitter           float64
}

// Total 返回各项之和。
func (b ScoreBreakdown) Total() float64 {
	return b.Deterministic() + b.Jitter
}

// Deterministic 返回除随机抖动外的各项之和。
func (b ScoreBreakdown) Deterministic() float64 {
	return b.TitleOverlap + b.ChannelDiversity + b.Duration + b.Popularity + b.Engagement + b.Recency
}

// Scorer 计算候选视频相对源视频的相关度，分值无上下界，仅用于排序。
type Scorer struct {
	rng Rand
	now func() time.Time
}

// NewScorer 构造 Scorer；now 为 nil 时使用 time.Now。
func NewScorer(rng Rand, now func() time.Time) *Scorer {
	if rng == nil {
		rng = NewRand()
	}
	if now == nil {
		now = time.Now
	}
	return &Scorer{rng: rng, now: now}
}

// Score 返回候选视频的相关度。
func (s *Scorer) Score(candidate, source *po.VideoItem, keywords []string) float64 {
	return s.Breakdown(candidate, source, keywords).Total()
}

// Breakdown 计算各项得分。调用方需保证 candidate.Snippet 存在。
func (s *Scorer) Breakdown(candidate, source *po.VideoItem, keywords []string) ScoreBreakdown {
	var b ScoreBreakdown
	b.TitleOverlap = titleOverlap(candidate, keywords)
	if candidate.ChannelID() == source.ChannelID() {
		b.ChannelDiversity = sameChannelPenalty
	} else {
		b.ChannelDiversity = otherChannelBonus
	}
	if candidate.ContentDetails != nil {
		if seconds, err := ParseDuration(candidate.ContentDetails.Duration); err == nil {
			b.Duration = durationShaping(seconds)
		}
	}
	if stats := candidate.Statistics; stats != nil {
		views := stats.ViewCount
		if views > 0 {
			b.Popularity = math.Min(popularityCap, math.Log10(float64(views))/10)
			b.Engagement = math.Min(engagementCap, float64(stats.LikeCount)/float64(views)*100)
		}
		if views > viralViewThreshold {
			b.Recency = viralBonus
		} else {
			b.Recency = s.recency(candidate)
		}
	} else {
		b.Recency = s.recency(candidate)
	}
	b.Jitter = s.rng.Float64() * jitterRange
	return b
}

func (s *Scorer) recency(candidate *po.VideoItem) float64 {
	published, ok := candidate.PublishedTime()
	if !ok {
		return 0
	}
	ageDays := math.Floor(s.now().Sub(published).Hours() / hoursPerDay)
	switch {
	case ageDays < 30:
		return 0.2
	case ageDays < 90:
		return 0.1
	case ageDays > 365:
		return -0.3
	default:
		return 0
	}
}

// 关键词为空时该项为 0。
func titleOverlap(candidate *po.VideoItem, keywords []string) float64 {
	if len(keywords) == 0 || candidate.Snippet == nil {
		return 0
	}
	words := wordSet(candidate.Snippet.Title)
	matched := 0
	for _, keyword := range keywords {
		if _, ok := words[keyword]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords)) * titleOverlapWeight
}

func durationShaping(seconds int) float64 {
	switch {
	case seconds < 180:
		return -0.5
	case seconds < 300:
		return -0.2
	case seconds > 600 && seconds < 3600:
		return 0.2
	default:
		return 0
	}
}

// ScoredCandidate 是带分值的候选视频。
type ScoredCandidate struct {
	Item  po.VideoItem
	Score float64
}

// RankByScore 按分值降序稳定排序，返回新切片。
func RankByScore(candidates []ScoredCandidate) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
