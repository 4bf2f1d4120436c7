package ranking

// RankedUser is a UserRating annotated with its 1-based position.
type RankedUser struct {
	UserRating
	Rank int
}

// RankResult answers "what is this user's global rank" against a computed
// ranking. Rank and Stats are nil when the user has no attempts at all;
// Total still counts every ranked user.
type RankResult struct {
	Rank  *int
	Total int
	Stats *UserRating
	Top   []RankedUser
}

// RankOf scans the ordered ranking for userID and returns their position,
// their composite stats, and the first topN rows with ranks attached.
func RankOf(userID string, ranking []UserRating, topN int) RankResult {
	result := RankResult{Total: len(ranking)}

	for i := range ranking {
		if ranking[i].UserID == userID {
			rank := i + 1
			stats := ranking[i]
			result.Rank = &rank
			result.Stats = &stats
			break
		}
	}

	n := topN
	if n > len(ranking) {
		n = len(ranking)
	}
	result.Top = make([]RankedUser, 0, n)
	for i := 0; i < n; i++ {
		result.Top = append(result.Top, RankedUser{UserRating: ranking[i], Rank: i + 1})
	}
	return result
}
