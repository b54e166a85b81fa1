package zone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jroosing/autodns/internal/zonegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZoneBasic(t *testing.T) {
	z, err := ParseText("$TTL 3600\n@ IN A 1.2.3.4\n", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com.", z.Origin)
	assert.Equal(t, uint32(3600), z.DefaultTTL)

	rrs := z.Lookup("example.com", "A")
	require.Len(t, rrs, 1)
	assert.Equal(t, "1.2.3.4", rrs[0].Value)
	assert.Equal(t, "IN", rrs[0].Class)
}

func TestParseZoneRequiresOrigin(t *testing.T) {
	_, err := ParseText("@ IN A 1.2.3.4\n", "")
	assert.Error(t, err)
}

func TestParseZoneSyntaxError(t *testing.T) {
	_, err := ParseText("$TTL 3600\n@ IN A not-an-address\n", "example.com.")
	assert.Error(t, err)
}

func TestParseGeneratedForwardZone(t *testing.T) {
	text := zonegen.RenderForwardZone("192.168.183.17", "integris.ptt", true)
	z, err := ParseText(text, "integris.ptt")
	require.NoError(t, err)

	soa := z.SOA()
	require.NotNil(t, soa)
	assert.Equal(t, "ns.integris.ptt.", soa.MName)
	assert.Equal(t, "root.integris.ptt.", soa.RName)
	assert.Equal(t, uint32(2), soa.Serial)
	assert.Equal(t, uint32(604800), soa.Refresh)
	assert.Equal(t, uint32(86400), soa.Retry)
	assert.Equal(t, uint32(2419200), soa.Expire)
	assert.Equal(t, uint32(604800), soa.Minimum)

	assert.Len(t, z.Lookup("integris.ptt.", "A"), 1)
	assert.Len(t, z.Lookup("ns.integris.ptt", "A"), 1)
	assert.Len(t, z.Lookup("www.integris.ptt", "A"), 1)
	cname := z.Lookup("webmail.integris.ptt", "CNAME")
	require.Len(t, cname, 1)
	assert.Equal(t, "mail.integris.ptt.", cname[0].Value)
	assert.True(t, z.NameExists("MAIL.integris.ptt"))
	assert.False(t, z.NameExists("ftp.integris.ptt"))
}

func TestParseGeneratedReverseZone(t *testing.T) {
	text := zonegen.RenderReverseZone("192.168.183.17", "integris.ptt", true)
	z, err := ParseText(text, "183.168.192.in-addr.arpa")
	require.NoError(t, err)

	ptrs := z.Lookup("17.183.168.192.in-addr.arpa.", "PTR")
	require.Len(t, ptrs, 4)
	values := []string{ptrs[0].Value, ptrs[1].Value, ptrs[2].Value, ptrs[3].Value}
	assert.ElementsMatch(t, []string{
		"integris.ptt.", "ns.integris.ptt.", "www.integris.ptt.", "mail.integris.ptt.",
	}, values)
	assert.True(t, z.ContainsName("17.183.168.192.in-addr.arpa."))
	assert.False(t, z.ContainsName("integris.ptt."))
}

func TestSortedOrdersByName(t *testing.T) {
	z, err := ParseText("$TTL 60\nb IN A 1.1.1.1\na IN A 2.2.2.2\n", "example.com")
	require.NoError(t, err)

	recs := z.Sorted()
	require.Len(t, recs, 2)
	assert.Equal(t, "a.example.com.", recs[0].Name)
	assert.Equal(t, "b.example.com.", z.Records[0].Name, "Sorted must not reorder the zone")
}

func TestLoadFileAndDiscover(t *testing.T) {
	dir := t.TempDir()
	text := zonegen.RenderForwardZone("10.0.0.1", "lab.local", false)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db.lab.local"), []byte(text), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "named.conf.local"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db.10.0.0"), []byte(""), 0o644))

	files, err := DiscoverZoneFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "db.10.0.0"), filepath.Join(dir, "db.lab.local")}, files)

	z, err := LoadFile(filepath.Join(dir, "db.lab.local"), "lab.local")
	require.NoError(t, err)
	assert.Len(t, z.Lookup("ns.lab.local", "A"), 1)

	_, err = LoadFile(filepath.Join(dir, "missing"), "lab.local")
	assert.Error(t, err)
}
