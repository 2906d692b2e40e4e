package locale

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsupportedSystem() *stubFactory {
	return &stubFactory{err: newError("", "", KindUnsupported, nil)}
}

func fixedDetector(id string, calls *int) Detector {
	return DetectorFunc(func(Category) (string, error) {
		if calls != nil {
			*calls++
		}
		return id, nil
	})
}

func TestUserFactoryFallsBackToInvariant(t *testing.T) {
	f := UserFactory(
		WithDetector(fixedDetector("", nil)),
		WithSystemFactory(unsupportedSystem()),
	)

	n, err := f.NumericInfo(Current)
	require.NoError(t, err)
	assert.Equal(t, ".", n.DecimalSeparator())
	assert.Equal(t, ",", n.GroupingSeparator())
	assert.Equal(t, []int{3}, n.Grouping())

	tm, err := f.TimeInfo(Current)
	require.NoError(t, err)
	assert.Equal(t, InvariantTime(), tm)
}

func TestUserFactoryUsesDetectedLocale(t *testing.T) {
	system := &stubFactory{numeric: germanNumeric(), time: germanTime()}
	calls := 0

	f := UserFactory(
		WithDetector(fixedDetector("de_DE.UTF-8", &calls)),
		WithSystemFactory(system),
	)

	n, err := f.NumericInfo(Current)
	require.NoError(t, err)
	assert.True(t, n.Equal(germanNumeric()))

	_, err = f.TimeInfo(Current)
	require.NoError(t, err)

	assert.Equal(t, []string{"de_DE.UTF-8", "de_DE.UTF-8"}, system.seen)
	assert.Equal(t, 2, calls, "detection runs on every ambient query")
}

func TestUserFactoryNeutralDetection(t *testing.T) {
	system := &stubFactory{numeric: germanNumeric(), time: germanTime()}

	f := UserFactory(WithDetector(fixedDetector("POSIX", nil)), WithSystemFactory(system))

	n, err := f.NumericInfo(Current)
	require.NoError(t, err)
	assert.True(t, n.Equal(InvariantNumeric()))
	assert.Zero(t, system.calls)
}

func TestUserFactoryDetectionFailure(t *testing.T) {
	system := &stubFactory{numeric: germanNumeric()}
	failing := DetectorFunc(func(Category) (string, error) { return "", errors.New("no session") })

	f := UserFactory(WithDetector(failing), WithSystemFactory(system))

	n, err := f.NumericInfo(Current)
	require.NoError(t, err)
	assert.True(t, n.Equal(InvariantNumeric()))
	assert.Zero(t, system.calls)
}

func TestUserFactoryExplicitLocale(t *testing.T) {
	system := &stubFactory{numeric: germanNumeric()}
	calls := 0

	f := UserFactory(WithDetector(fixedDetector("fr_FR", &calls)), WithSystemFactory(system))

	n, err := f.NumericInfo("de_DE")
	require.NoError(t, err)
	assert.True(t, n.Equal(germanNumeric()))
	assert.Equal(t, []string{"de_DE"}, system.seen)
	assert.Zero(t, calls)
}

func TestUserFactoryOverridesFirst(t *testing.T) {
	system := &stubFactory{numeric: InvariantNumeric(), time: InvariantTime()}

	f := UserFactory(
		WithDetector(fixedDetector("en_IN.UTF-8", nil)),
		WithSystemFactory(system),
		WithOverrides(filepath.Join("testdata", "overrides.json")),
	)

	n, err := f.NumericInfo(Current)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, n.Grouping())

	// The table has no time data for en-IN, so the system answers.
	_, err = f.TimeInfo(Current)
	require.NoError(t, err)
	assert.Equal(t, []string{"en_IN.UTF-8"}, system.seen)
}

func TestUserFactoryInvalidOptions(t *testing.T) {
	_, err := NewConfig(WithDetector(nil))
	assert.Error(t, err)

	_, err = NewConfig(WithOverrides(filepath.Join("testdata", "missing.yaml")))
	assert.Error(t, err)

	table, err := NewTableFactory(nil)
	require.NoError(t, err)
	_, err = NewConfig(WithOverrides(filepath.Join("testdata", "overrides.json")), WithOverrideTable(table))
	assert.Error(t, err)

	f := UserFactory(
		WithDetector(nil),
		WithSystemFactory(unsupportedSystem()),
		WithOverrides(filepath.Join("testdata", "missing.yaml")),
	)
	n, err := f.NumericInfo("de_DE")
	require.NoError(t, err)
	assert.True(t, n.Equal(InvariantNumeric()))
}

func TestUserFactoryHooks(t *testing.T) {
	recorder := &recordingHook{}
	f := UserFactory(
		WithDetector(fixedDetector("", nil)),
		WithSystemFactory(unsupportedSystem()),
		WithHooks(recorder, nil),
	)

	_, err := f.TimeInfo(Current)
	require.NoError(t, err)
	assert.Equal(t, []string{"before:time:", "after:time:"}, recorder.events)
}

func TestNewUserFactoryFillsDefaults(t *testing.T) {
	f := NewUserFactory(&Config{Detector: fixedDetector("", nil)})
	_, err := f.NumericInfo(Current)
	assert.NoError(t, err)

	f = NewUserFactory(nil)
	_, err = f.TimeInfo("xx_XX")
	assert.NoError(t, err)
}

func TestDefaultUserFactoryNeverFails(t *testing.T) {
	f := UserFactory()
	for _, id := range []string{Current, "C", "xx_XX", "en_US"} {
		_, err := f.NumericInfo(id)
		assert.NoError(t, err, id)
		_, err = f.TimeInfo(id)
		assert.NoError(t, err, id)
	}
}

func TestUserFactoryPlatformDetectionUsesNativeCurrent(t *testing.T) {
	system := &stubFactory{numeric: germanNumeric(), time: germanTime()}
	preferred := OSDetector{Lookup: func() (string, error) { return "de-DE", nil }}

	f := UserFactory(WithDetector(preferred), WithSystemFactory(system))

	n, err := f.NumericInfo(Current)
	require.NoError(t, err)
	assert.True(t, n.Equal(germanNumeric()))
	assert.Equal(t, []string{Current}, system.seen)
}

func TestUserFactoryPlatformDetectionStillReachesOverrides(t *testing.T) {
	system := &stubFactory{numeric: InvariantNumeric(), time: InvariantTime()}
	preferred := OSDetector{Lookup: func() (string, error) { return "en_IN", nil }}

	f := UserFactory(
		WithDetector(DetectorChain{EnvDetector{Getenv: envOf(nil)}, preferred}),
		WithSystemFactory(system),
		WithOverrides(filepath.Join("testdata", "overrides.json")),
	)

	n, err := f.NumericInfo(Current)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, n.Grouping())
	assert.Zero(t, system.calls)

	_, err = f.TimeInfo(Current)
	require.NoError(t, err)
	assert.Equal(t, []string{Current}, system.seen)
}
