package demandProfiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeslotClock(t *testing.T) {

	t.Run("Zero Base", func(t *testing.T) {
		cases := []struct {
			ts, dow, hod int
		}{
			{0, 1, 0},
			{23, 1, 23},
			{24, 2, 0},
			{167, 7, 23},
			{168, 1, 0}, // wraps to the next week
		}
		for _, c := range cases {
			dow, hod := TimeslotClock(c.ts, 0)
			assert.Equal(t, c.dow, dow, "ts %d", c.ts)
			assert.Equal(t, c.hod, hod, "ts %d", c.ts)
		}
	})

	t.Run("Base Offset", func(t *testing.T) {
		// timeslot zero lands six hours into day one
		dow, hod := TimeslotClock(0, 6)
		assert.Equal(t, 1, dow)
		assert.Equal(t, 6, hod)

		dow, hod = TimeslotClock(18, 6)
		assert.Equal(t, 2, dow)
		assert.Equal(t, 0, hod)
	})
}

func TestParseTariffTx(t *testing.T) {

	t.Run("Valid", func(t *testing.T) {
		tx, err := ParseTariffTx("360, CONSUME, -42.5")
		require.NoError(t, err)
		assert.Equal(t, 360, tx.Timeslot)
		assert.Equal(t, TxConsume, tx.TxType)
		assert.Equal(t, -42.5, tx.KWh)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseTariffTx("360, CONSUME")
		assert.Error(t, err)
		_, err = ParseTariffTx("x, CONSUME, -42.5")
		assert.Error(t, err)
		_, err = ParseTariffTx("360, CONSUME, y")
		assert.Error(t, err)
	})
}

func TestExtractGameData(t *testing.T) {

	t.Run("Sums Per Timeslot", func(t *testing.T) {
		dir := t.TempDir()
		logPath := writeDataFile(t, dir, "game1.txt", strings.Join([]string{
			"0, CONSUME, -3.0",
			"0, CONSUME, -2.0",
			"0, PRODUCE, 1.0",
			"0, SIGNUP, 12.0", // ignored tx type
			"25, CONSUME, -4.0",
		}, "\n")+"\n")

		require.NoError(t, ExtractGameData(logPath, dir, 0))

		raw, err := os.ReadFile(filepath.Join(dir, "game1-prod-cons.data"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "0, 1, 0, 1.000, -5.000", lines[0])
		assert.Equal(t, "25, 2, 1, 0.000, -4.000", lines[1])
	})

	t.Run("Output Feeds Aggregation", func(t *testing.T) {
		dir := t.TempDir()
		logPath := writeDataFile(t, dir, "game2.txt",
			"0, PRODUCE, 2.0\n0, CONSUME, -5.0\n")

		require.NoError(t, ExtractGameData(logPath, dir, 0))

		profile := NewProfile()
		require.NoError(t, CollectData(profile, dir))
		assert.Equal(t, []float64{3.0}, profile.Buckets[0])
	})

	t.Run("Malformed Log", func(t *testing.T) {
		dir := t.TempDir()
		logPath := writeDataFile(t, dir, "game3.txt", "not a tx\n")
		assert.Error(t, ExtractGameData(logPath, dir, 0))
	})
}

func TestWriteProfileStatsData(t *testing.T) {
	dir := t.TempDir()
	statsPath := filepath.Join(dir, "profile.csv")

	profile := NewProfile()
	profile.Buckets[0] = []float64{3.0}
	stats := SummarizeProfile(profile)

	require.NoError(t, WriteProfileStatsData(stats, statsPath))

	raw, err := os.ReadFile(statsPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")

	// header plus one row per bucket
	require.Len(t, lines, hrs+1)
	assert.Equal(t, "Hour_Of_Week,Mean_Net_Demand_KWh,Std_Net_Demand_KWh", lines[0])
	assert.Equal(t, "0,3.00000000,0.00000000", lines[1])

	// empty buckets are written as NaN
	assert.Equal(t, "1,NaN,NaN", lines[2])
}
