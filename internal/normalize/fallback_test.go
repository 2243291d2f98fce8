package normalize

import (
	"encoding/json"
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shapeOf reduces a JSON document to its key structure: objects keep their
// keys, arrays are represented by their first element, leaves by kind.
func shapeOf(t *testing.T, v interface{}) interface{} {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)

	var doc interface{}
	require.NoError(t, json.Unmarshal(body, &doc))
	return reduce(doc)
}

func reduce(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			out[k] = reduce(child)
		}
		return out
	case []interface{}:
		if len(val) == 0 {
			return "array"
		}
		return []interface{}{reduce(val[0])}
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	}
	return "unknown"
}

func TestFallbackShapesMatchLiveData(t *testing.T) {
	liveScholar := NormalizeScholar("id", scholarResponse(article("a", 1)))
	assert.Equal(t, shapeOf(t, liveScholar), shapeOf(t, FallbackScholar()))

	liveRepo := repo("r", 1, false)
	liveRepo.Topics = []string{"go"}
	liveGitHub := NormalizeGitHub(&github.User{}, []*github.Repository{liveRepo})
	assert.Equal(t, shapeOf(t, liveGitHub), shapeOf(t, FallbackGitHub()))

	livePinned := NormalizeGitHubPinned([]*github.Repository{liveRepo})
	assert.Equal(t, shapeOf(t, livePinned), shapeOf(t, FallbackPinned()))

	liveStarred := NormalizeGitHubStarred([]*github.StarredRepository{})
	assert.Equal(t, shapeOf(t, liveStarred), shapeOf(t, FallbackStarred()))

	liveLinkedIn := NormalizeLinkedIn(decodeLinkedIn(t, linkedInBody), fixedNow)
	assert.Equal(t, shapeOf(t, liveLinkedIn), shapeOf(t, FallbackLinkedIn()))
}

func TestFallbackContents(t *testing.T) {
	scholar := FallbackScholar()
	assert.Equal(t, "Omar Elgendy", scholar.Profile.Name)
	assert.Len(t, scholar.TopPublications, 4)
	assert.Equal(t, 6, scholar.TotalPublications)
	for i := 1; i < len(scholar.TopPublications); i++ {
		assert.GreaterOrEqual(t, scholar.TopPublications[i-1].Citations, scholar.TopPublications[i].Citations)
	}

	pinned := FallbackPinned()
	assert.Equal(t, len(pinned.PinnedRepositories), pinned.TotalPinned)

	linkedIn := FallbackLinkedIn()
	require.NotEmpty(t, linkedIn.Experience)
	assert.Equal(t, "Present", linkedIn.Experience[0].EndDate)
	assert.Len(t, linkedIn.Skills, 5)
}

func TestFallbackReturnsFreshCopies(t *testing.T) {
	first := FallbackGitHub()
	first.Repositories[0].Name = "mutated"
	first.Repositories[0].Topics[0] = "mutated"

	second := FallbackGitHub()
	assert.Equal(t, "pytorch_tutorials", second.Repositories[0].Name)
	assert.Equal(t, "pytorch", second.Repositories[0].Topics[0])
}
