package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripCitations(t *testing.T) {
	require.Equal(t, "Cupertino, California", StripCitations("Cupertino, California[1]"))
	require.Equal(t, "Seoul, South Korea", StripCitations("Seoul, South Korea [note 2][3] "))
	require.Equal(t, "Redmond", StripCitations("Redmond"))
}

func TestStripChars(t *testing.T) {
	require.Equal(t, "394.3", StripChars("$394.3B", "$", "B"))
	require.Equal(t, "2400", StripChars(" $2,400K ", ",", "K", "$"))
	require.Equal(t, "164000", StripChars("164,000", ","))
}

func TestMatchName(t *testing.T) {
	require.Equal(t, "samsungelectronics", NormalizeName(" Samsung Electronics\n"))
	require.True(t, MatchName("Samsung Electronics", []string{"samsung"}))
	require.False(t, MatchName("Apple", []string{"samsung"}))
}
