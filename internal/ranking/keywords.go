package ranking

import (
	"strings"
	"unicode"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
)

// descriptionPrefixRunes 限定参与关键词提取的描述长度。
const descriptionPrefixRunes = 100

// StopWords 是关键词提取时丢弃的常见词。
var StopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "your": {}, "all": {}, "any": {}, "can": {}, "had": {},
	"her": {}, "was": {}, "one": {}, "our": {}, "out": {}, "day": {},
	"get": {}, "has": {}, "him": {}, "his": {}, "how": {}, "man": {},
	"new": {}, "now": {}, "old": {}, "see": {}, "two": {}, "way": {},
	"who": {}, "boy": {}, "did": {}, "its": {}, "let": {}, "put": {},
	"say": {}, "she": {}, "too": {}, "use": {}, "this": {}, "that": {},
	"with": {}, "have": {}, "from": {}, "they": {}, "will": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "there": {}, "their": {}, "about": {},
	"would": {}, "these": {}, "them": {}, "than": {}, "then": {}, "some": {},
	"into": {}, "just": {}, "like": {}, "more": {}, "also": {}, "been": {},
	"were": {}, "here": {}, "only": {}, "very": {}, "video": {}, "videos": {},
	"official": {}, "watch": {}, "youtube": {},
}

// ExtractKeywords 从源视频标题与描述前 100 个字符中提取关键词。
// 结果保留重复项与出现顺序。
func ExtractKeywords(source *po.VideoItem) []string {
	if source == nil || source.Snippet == nil {
		return nil
	}
	description := []rune(source.Snippet.Description)
	if len(description) > descriptionPrefixRunes {
		description = description[:descriptionPrefixRunes]
	}
	tokens := tokenize(source.Snippet.Title + " " + string(description))
	keywords := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len([]rune(token)) <= 2 {
			continue
		}
		if _, stop := StopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

// tokenize 小写化、去除标点符号后按空白切分。
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)
	return strings.Fields(cleaned)
}

func wordSet(text string) map[string]struct{} {
	tokens := tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
