// Package dto は気象庁APIレスポンスのデータ転送オブジェクトを定義します。
package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ResultCodeOK は正常終了時のヘッダーの結果コード（"NORMAL_SERVICE"）です。
const ResultCodeOK = "00"

// UltraSrtNcstResponse は getUltraSrtNcst のJSONレスポンスを表します。
type UltraSrtNcstResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body *struct {
			DataType string `json:"dataType"`
			Items    *struct {
				Item []Item `json:"item"`
			} `json:"items"`
			PageNo     int `json:"pageNo"`
			NumOfRows  int `json:"numOfRows"`
			TotalCount int `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

// Item は基準日時における1カテゴリ分の観測値です。
type Item struct {
	BaseDate  string   `json:"baseDate"`
	BaseTime  string   `json:"baseTime"`
	Category  string   `json:"category"`
	NX        int      `json:"nx"`
	NY        int      `json:"ny"`
	ObsrValue ObsValue `json:"obsrValue"`
}

// ObsValue は観測値です。APIは文字列で返しますが、数値で返すミラーもあります。
type ObsValue string

// UnmarshalJSON は "12.3" と 12.3 の両方を受け付けます。
func (v *ObsValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ObsValue(s)
		return nil
	}
	if string(data) == "null" {
		*v = ""
		return nil
	}
	*v = ObsValue(data)
	return nil
}

// Float は値を float64 として解析します。
func (v ObsValue) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
}
