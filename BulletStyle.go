package pptxbullet

import (
	"fmt"
	"strings"
)

// BulletStyle - semantic bullet value of a paragraph.
// Empty value means no bullet.
type BulletStyle string

// Bullet styles
const (
	BulletStyleNone   BulletStyle = ""
	BulletStyleBullet BulletStyle = "bullet"
	BulletStyleNumber BulletStyle = "number"
)

// Written instead of empty string where "no value" must be spelled out
const bulletStyleNoneWord = "none"

// accepted inputs, in error message order
var (
	bulletStyleAccepted      = []string{`""`, `"none"`, `"bullet"`, `"number"`}
	looseBulletStyleAccepted = append([]string{"nil"}, bulletStyleAccepted...)
)

// IsNone - style clears bullets
func (s BulletStyle) IsNone() bool {
	return s == BulletStyleNone || s == bulletStyleNoneWord
}

// normalize maps clear sentinels to BulletStyleNone, rejects unknown values
func (s BulletStyle) normalize() (BulletStyle, error) {
	return s.normalizeFrom(bulletStyleAccepted)
}

// same as normalize, error lists given accepted inputs
func (s BulletStyle) normalizeFrom(accepted []string) (BulletStyle, error) {
	switch s {
	case BulletStyleBullet, BulletStyleNumber:
		return s, nil
	case BulletStyleNone, bulletStyleNoneWord:
		return BulletStyleNone, nil
	}
	return "", &InvalidArgumentError{
		Param:    "bullet style",
		Value:    string(s),
		Accepted: accepted,
	}
}

func (s BulletStyle) String() string {
	if s.IsNone() {
		return bulletStyleNoneWord
	}
	return string(s)
}

// ParseBulletStyle converts loosely typed input (yaml value, flag)
// into style. nil and nil pointers mean "no bullet".
func ParseBulletStyle(v any) (BulletStyle, error) {
	switch val := v.(type) {
	case nil:
		return BulletStyleNone, nil
	case BulletStyle:
		return val.normalizeFrom(looseBulletStyleAccepted)
	case *BulletStyle:
		if val == nil {
			return BulletStyleNone, nil
		}
		return val.normalizeFrom(looseBulletStyleAccepted)
	case string:
		return BulletStyle(strings.TrimSpace(val)).normalizeFrom(looseBulletStyleAccepted)
	case *string:
		if val == nil {
			return BulletStyleNone, nil
		}
		return BulletStyle(strings.TrimSpace(*val)).normalizeFrom(looseBulletStyleAccepted)
	}
	return "", &InvalidArgumentError{
		Param:    "bullet style",
		Value:    fmt.Sprintf("%T(%v)", v, v),
		Accepted: looseBulletStyleAccepted,
	}
}

// BulletStyle reads bullet style from paragraph marker.
// Explicit <a:buNone/> and missing marker both report BulletStyleNone.
// Never modifies paragraph.
func (p *Paragraph) BulletStyle() BulletStyle {
	pPr := p.Properties()
	if pPr == nil {
		return BulletStyleNone
	}
	return pPr.Marker().Style()
}

// SetBulletStyle sets bullet style with default marker settings
func (p *Paragraph) SetBulletStyle(style BulletStyle) error {
	return p.SetBulletStyleWith(style, defaultConfig)
}

// SetBulletStyleWith replaces any bullet marker of paragraph with one
// matching style. Character and numbering scheme are taken from cfg.
//
// Invalid style is rejected before anything changes. Otherwise <a:pPr> is
// created when missing (also when clearing) and holds at most one marker
// afterwards.
func (p *Paragraph) SetBulletStyleWith(style BulletStyle, cfg Config) error {
	style, err := style.normalize()
	if err != nil {
		return err
	}
	cfg = cfg.withDefaults()

	pPr := p.PropertiesOrCreate()
	pPr.removeMarkers()

	switch style {
	case BulletStyleBullet:
		pPr.insertMarker(CharacterMarker(cfg.BulletChar))
	case BulletStyleNumber:
		pPr.insertMarker(AutoNumberMarker(cfg.NumberScheme))
	case BulletStyleNone:
		tracef("pPr: bullet cleared")
	}
	return nil
}

// ClearBulletStyle removes any bullet marker
func (p *Paragraph) ClearBulletStyle() {
	// clear sentinel never fails validation
	_ = p.SetBulletStyle(BulletStyleNone)
}
