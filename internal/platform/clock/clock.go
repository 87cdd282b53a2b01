// Package clock は設定されたタイムゾーンでの現在時刻を提供します。
package clock

import (
	"fmt"
	"time"
)

// DefaultLocation は気象APIとレスポンス日付が基準とするタイムゾーンです。
const DefaultLocation = "Asia/Seoul"

// Clock は現在時刻を返します。
type Clock func() time.Time

// In は loc での現在時刻を返す Clock を生成します。
func In(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// LoadLocation はIANAタイムゾーン名を解決します。空の場合は DefaultLocation を使います。
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultLocation
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}

// TopOfHour は t のタイムゾーンのまま分・秒・ナノ秒を0にします。
// time.Truncate はUTC基準で丸めるため、30分単位のオフセットで正しくありません。
func TopOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
