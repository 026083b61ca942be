package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	apperrors "github.com/agbru/bignum/internal/errors"
)

const (
	// CurrentProfileVersion is bumped whenever the profile layout changes.
	CurrentProfileVersion = 1
	// DefaultProfileFileName is the profile file created in the home
	// directory.
	DefaultProfileFileName = ".bigcalc_calibration.json"
)

// CalibrationProfile is the persisted outcome of a calibration run. It is
// only reused on the host, Go version and digit width that produced it.
type CalibrationProfile struct {
	ProfileVersion int       `json:"profile_version"`
	CalibratedAt   time.Time `json:"calibrated_at"`

	NumCPU    int    `json:"num_cpu"`
	GOARCH    string `json:"goarch"`
	GOOS      string `json:"goos"`
	GoVersion string `json:"go_version"`
	WordSize  int    `json:"word_size"`
	DigitBits int    `json:"digit_bits"`

	KaratsubaThreshold int `json:"karatsuba_threshold"`
	NewtonThreshold    int `json:"newton_threshold"`
	ParallelThreshold  int `json:"parallel_threshold"`

	CalibrationTime string `json:"calibration_time"`
}

// NewProfile creates a profile describing the current host.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		DigitBits:      64,
	}
}

// IsValid reports whether the profile was produced on a host like this one.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63)
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

func (p *CalibrationProfile) String() string {
	return fmt.Sprintf("calibration of %s (%s/%s, %d CPUs, %d-bit digits): karatsuba=%d newton=%d parallel=%d digits",
		p.CalibratedAt.Format(time.RFC3339), p.GOOS, p.GOARCH, p.NumCPU, p.DigitBits,
		p.KaratsubaThreshold, p.NewtonThreshold, p.ParallelThreshold)
}

// SaveProfile writes the profile as indented JSON.
func (p *CalibrationProfile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return apperrors.WrapError(err, "encoding calibration profile")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapError(err, "creating %s", dir)
		}
	}
	return apperrors.WrapError(os.WriteFile(path, data, 0o644), "writing calibration profile")
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperrors.WrapError(err, "decoding %s", path)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path, or returns a new one when
// it is missing or unusable. The boolean reports whether it was loaded.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() {
		return NewProfile(), false
	}
	return p, true
}

// GetDefaultProfilePath returns the profile path in the home directory, or
// in the working directory when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}
