package model

// AllBranches is the filter sentinel matching every branch.
const AllBranches = "모든 지점"

// branches is the fixed set of district branch offices.
var branches = []string{
	"강남지점", "강동지점", "강북지점", "강서지점", "관악지점",
	"광진지점", "구로지점", "금천지점", "노원지점", "도봉지점",
	"동대문지점", "동작지점", "마포지점", "서대문지점", "서초지점",
	"성동지점", "성북지점", "송파지점", "양천지점", "영등포지점",
	"용산지점", "은평지점", "종로지점", "명동지점", "중랑지점",
}

// Branches returns the fixed list of branch names in display order.
func Branches() []string {
	out := make([]string, len(branches))
	copy(out, branches)
	return out
}

// IsValidBranch reports whether name is a known branch.
func IsValidBranch(name string) bool {
	for _, b := range branches {
		if b == name {
			return true
		}
	}
	return false
}
