// Package catalog holds the static display metadata for every assessment the
// client can surface: titles, categories, icons and time estimates, keyed by
// catalog id, plus the translation from backend test type keys to catalog
// ids.
package catalog

import "mindscale/internal/model"

// Entry is one catalog row. TestType is the backend instrument key; entries
// without a scorable backend instrument carry an empty TestType.
type Entry struct {
	ID            string
	TestType      string
	Title         string
	Description   string
	Category      string
	Icon          string
	QuestionCount int
	EstimatedTime string
	Color         string
}

var entries = []Entry{
	{
		ID:            "psychological-age",
		TestType:      "psychological_age",
		Title:         "心理年龄测试",
		Description:   "通过30道精心设计的问题，科学评估您的心理年龄状态",
		Category:      "心理分析",
		Icon:          "brain",
		QuestionCount: 30,
		EstimatedTime: "5-8分钟",
		Color:         "blue",
	},
	{
		ID:            "mood-thermometer",
		TestType:      "bsrs5",
		Title:         "心情温度计",
		Description:   "简式健康量表(BSRS-5)，快速评估您的心理困扰程度",
		Category:      "心理健康",
		Icon:          "heart",
		QuestionCount: 6,
		EstimatedTime: "2-3分钟",
		Color:         "pink",
	},
	{
		ID:            "fatalism",
		TestType:      "mfsg",
		Title:         "宿命观量表",
		Description:   "评估您对命运、运气和自我掌控的态度倾向",
		Category:      "心理分析",
		Icon:          "smile",
		QuestionCount: 16,
		EstimatedTime: "3-5分钟",
		Color:         "purple",
	},
	{
		ID:            "mbti",
		TestType:      "mbti",
		Title:         "MBTI性格测试",
		Description:   "发现你的性格类型，了解你的行为模式和潜在优势",
		Category:      "性格分析",
		Icon:          "zap",
		QuestionCount: 28,
		EstimatedTime: "15-20分钟",
		Color:         "orange",
	},
	{
		ID:            "jealousy",
		TestType:      "ljsi",
		Title:         "恋爱嫉妒测试",
		Description:   "了解您在亲密关系中对边界与第三方互动的敏感程度",
		Category:      "情感关系",
		Icon:          "heart-handshake",
		QuestionCount: 15,
		EstimatedTime: "4-6分钟",
		Color:         "green",
	},
	{
		ID:            "couple-relationship",
		TestType:      "crq",
		Title:         "亲密关系测试",
		Description:   "评估您与伴侣在信任、亲密与协作上的关系质量",
		Category:      "情感关系",
		Icon:          "users",
		QuestionCount: 14,
		EstimatedTime: "4-6分钟",
		Color:         "rose",
	},
	{
		ID:            "beck-hopelessness",
		TestType:      "bhs",
		Title:         "贝克绝望量表",
		Description:   "评估您对未来的期待与信心水平",
		Category:      "心理健康",
		Icon:          "cloud",
		QuestionCount: 20,
		EstimatedTime: "5-8分钟",
		Color:         "slate",
	},
	{
		ID:            "hpls",
		TestType:      "hpls",
		Title:         "健康促进生活形态量表",
		Description:   "从六个维度评估您的健康生活方式",
		Category:      "健康生活",
		Icon:          "activity",
		QuestionCount: 40,
		EstimatedTime: "10-15分钟",
		Color:         "teal",
	},
	{
		ID:            "mps",
		TestType:      "mps",
		Title:         "多维完美主义量表",
		Description:   "了解您的完美主义倾向及其对身心的影响",
		Category:      "心理分析",
		Icon:          "target",
		QuestionCount: 29,
		EstimatedTime: "8-12分钟",
		Color:         "indigo",
	},
	{
		ID:            "ipvs",
		TestType:      "ipvs",
		Title:         "亲密关系暴力量表",
		Description:   "评估亲密关系中的权力、情感与价值对待方式",
		Category:      "情感关系",
		Icon:          "shield",
		QuestionCount: 15,
		EstimatedTime: "4-6分钟",
		Color:         "red",
	},
}

// typeToID translates backend test type keys to catalog ids. Keys equal to
// their catalog id are resolved without an entry here.
var typeToID = map[string]string{
	"psychological_age": "psychological-age",
	"bsrs5":             "mood-thermometer",
	"mfsg":              "fatalism",
	"ljsi":              "jealousy",
	"crq":               "couple-relationship",
	"bhs":               "beck-hopelessness",
}

// All returns every catalog entry in display order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ByID returns the entry with the given catalog id.
func ByID(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ByTestType resolves a backend test type key to its catalog entry,
// translating through typeToID first.
func ByTestType(testType string) (Entry, bool) {
	id, ok := typeToID[testType]
	if !ok {
		id = testType
	}
	return ByID(id)
}

// PopularEntry is a catalog entry annotated with its completed session count.
type PopularEntry struct {
	Entry
	SessionCount int64
}

// MergePopular joins backend popularity rows with catalog metadata. Rows
// whose test type has no catalog entry are dropped; the backend title and
// description win over the static ones when present.
func MergePopular(rows []model.PopularTest) []PopularEntry {
	merged := make([]PopularEntry, 0, len(rows))
	for _, row := range rows {
		e, ok := ByTestType(row.TestType)
		if !ok {
			continue
		}
		if row.Title != "" {
			e.Title = row.Title
		}
		if row.Description != "" {
			e.Description = row.Description
		}
		merged = append(merged, PopularEntry{Entry: e, SessionCount: row.SessionCount})
	}
	return merged
}
