package ranking

// ShuffleWithRelevance 将已按相关度排好的序列切为三段，段内洗牌后交错合并。
// 输出是输入的一个排列，输入切片不会被修改。
func ShuffleWithRelevance[T any](items []T, rng Rand) []T {
	n := len(items)
	out := make([]T, 0, n)
	if n <= 1 {
		return append(out, items...)
	}
	size := (n + 2) / 3
	chunks := make([][]T, 0, 3)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		chunk := make([]T, end-start)
		copy(chunk, items[start:end])
		shuffleInPlace(chunk, rng)
		chunks = append(chunks, chunk)
	}
	for i := 0; i < size; i++ {
		for _, chunk := range chunks {
			if i < len(chunk) {
				out = append(out, chunk[i])
			}
		}
	}
	return out
}

// Fisher–Yates
func shuffleInPlace[T any](items []T, rng Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
