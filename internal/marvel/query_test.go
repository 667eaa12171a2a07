package marvel

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int              { return &v }
func boolPtr(v bool) *bool           { return &v }
func datePtr(v time.Time) *time.Time { return &v }

func TestBuildQuery_SigningParamsFirst(t *testing.T) {
	t.Parallel()

	filter := CharacterFilter{Name: "Iron Man", Limit: intPtr(5)}
	got := buildQuery("1", "pub", "priv", filter.params())

	parts := strings.Split(got, "&")
	require.Equal(t, []string{
		"ts=1",
		"apikey=pub",
		"hash=" + sign("1", "priv", "pub"),
		"name=Iron%20Man",
		"limit=5",
	}, parts)
}

func TestBuildQuery_EmptyFilter(t *testing.T) {
	t.Parallel()

	got := buildQuery("1", "pub", "priv", nil)
	require.Equal(t, "ts=1&apikey=pub&hash="+sign("1", "priv", "pub"), got)
}

func TestBuildQuery_DifferentTimestamps_DifferOnlyInSigning(t *testing.T) {
	t.Parallel()

	filter := CharacterFilter{NameStartsWith: "Spider"}
	first := strings.Split(buildQuery("1", "pub", "priv", filter.params()), "&")
	second := strings.Split(buildQuery("2", "pub", "priv", filter.params()), "&")

	require.Len(t, first, len(second))
	for i := range first {
		switch {
		case strings.HasPrefix(first[i], "ts="), strings.HasPrefix(first[i], "hash="):
			require.NotEqual(t, first[i], second[i])
		default:
			require.Equal(t, first[i], second[i])
		}
	}
}

func TestCharacterFilter_Params(t *testing.T) {
	t.Parallel()

	modified := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	filter := CharacterFilter{
		Name:          "Thor",
		ModifiedSince: datePtr(modified),
		Limit:         intPtr(10),
		Offset:        intPtr(20),
		OrderBy:       "-name",
	}

	got := joinParams(filter.params())
	require.Equal(t, "name=Thor&modifiedSince=2024-03-15&limit=10&offset=20&orderBy=-name", got)
}

func TestComicFilter_Params_OrderAndRendering(t *testing.T) {
	t.Parallel()

	filter := ComicFilter{
		TitleStartsWith: "Amazing Spider",
		Format:          "comic",
		NoVariants:      boolPtr(true),
		DateRange:       datePtr(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)),
		StartYear:       intPtr(2020),
		Limit:           intPtr(3),
	}

	got := joinParams(filter.params())
	require.Equal(t,
		"titleStartsWith=Amazing%20Spider&format=comic&noVariants=true&dateRange=2023-01-02&startYear=2020&limit=3",
		got)
}

func TestComicFilter_ZeroValuesOmitted(t *testing.T) {
	t.Parallel()

	require.Empty(t, joinParams(ComicFilter{}.params()))
	require.Empty(t, joinParams(CharacterFilter{}.params()))
}

func TestEscape_SpacesAsPercent20(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Iron%20Man", escape("Iron Man"))
	require.Equal(t, "a%26b%3Dc", escape("a&b=c"))
}
