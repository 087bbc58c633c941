package model

// AllCategories is the filter sentinel matching every account category.
const AllCategories = "모든 계정과목"

// categoryOrder preserves the display order of account categories.
var categoryOrder = []string{
	"자영업지원센터 운영",
	"종합지원 포털 운영",
	"우리마을가게 상권분석서비스",
	"소상공인 역량강화",
	"자영업 클리닉 지원",
	"위탁관리수수료",
	"위기 소상공인 조기발굴 및 선제지원",
	"중장년 소상공인 디지털 전환",
	"소상공인 사업재기 및 안전한 폐업지원",
	"외부전문가 구성 및 운영",
	"서울형 다시서기 4.0 프로젝트",
}

// budgetCodes maps each account category to its allowed budget codes.
var budgetCodes = map[string][]string{
	"자영업지원센터 운영":            {"조사연구비", "광고선전비"},
	"종합지원 포털 운영":            {"종합지원 포털 서비스 유지관리", "종합지원 포털 서비스 고도화"},
	"우리마을가게 상권분석서비스":       {"우리마을가게 고도화", "우리마을가게 유지관리"},
	"소상공인 역량강화":             {"온라인 교육 시스템", "소상공인 교육", "현장멘토링"},
	"자영업 클리닉 지원":            {"자영업클리닉 컨설팅"},
	"위탁관리수수료":               {"위탁관리수수료"},
	"위기 소상공인 조기발굴 및 선제지원":  {"위기 소상공인 컨설팅", "위기 소상공인 이행비용"},
	"중장년 소상공인 디지털 전환":      {"컨설팅 비용", "디지털 전환 교육", "디지털 전환비용", "디지털 정착비용"},
	"소상공인 사업재기 및 안전한 폐업지원": {"사업재기 컨설팅", "사업재기 폐업지원금"},
	"외부전문가 구성 및 운영":         {"업종닥터 운영비", "외부전문가 교육비", "우수 멘토 행사", "디지털 전환 운영비"},
	"서울형 다시서기 4.0 프로젝트":    {"재도전 씨앗자금", "자영업클리닉(다시서기)"},
}

// Categories returns the fixed list of account categories in display order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsValidCategory reports whether name is a known account category.
func IsValidCategory(name string) bool {
	_, ok := budgetCodes[name]
	return ok
}

// BudgetCodes returns the allowed budget codes for a category, or nil for an
// unknown category.
func BudgetCodes(category string) []string {
	codes, ok := budgetCodes[category]
	if !ok {
		return nil
	}
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// IsValidBudgetCode reports whether code belongs to the category's code set.
func IsValidBudgetCode(category, code string) bool {
	for _, c := range budgetCodes[category] {
		if c == code {
			return true
		}
	}
	return false
}
