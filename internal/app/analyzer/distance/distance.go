package distance

// Costs holds the price of each edit operation. Symmetry of the metric
// is only guaranteed when Insert == Delete.
type Costs struct {
	Insert     int
	Delete     int
	Substitute int
	Transpose  int
}

func DefaultCosts() Costs {
	return Costs{
		Insert:     1,
		Delete:     1,
		Substitute: 1,
		Transpose:  1,
	}
}

func (c Costs) max() int {
	return max(c.Insert, c.Delete, c.Substitute, c.Transpose)
}

type Calculator struct {
	costs Costs
}

func NewCalculator(costs Costs) *Calculator {
	return &Calculator{
		costs: costs,
	}
}

// Distance computes the Damerau-Levenshtein distance between a and b with
// an iterative dynamic-programming matrix. Runes are atomic, no grapheme
// clustering.
func (c *Calculator) Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	dp := make([][]int, n+1)
	for i := 0; i <= n; i++ {
		dp[i] = make([]int, m+1)
		dp[i][0] = i * c.costs.Delete
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j * c.costs.Insert
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = c.costs.Substitute
			}
			dp[i][j] = min(dp[i][j-1]+c.costs.Insert, dp[i-1][j]+c.costs.Delete, dp[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				dp[i][j] = min(dp[i][j], dp[i-2][j-2]+c.costs.Transpose)
			}
		}
	}

	return dp[n][m]
}

// Resemblance maps distance into a [0, 1] score, 1 meaning equal strings.
// The divisor is the worst case over the longer string.
func (c *Calculator) Resemblance(a, b string, dist int) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(dist)/float64(longest*c.costs.max())
}
