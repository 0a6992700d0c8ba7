package scoring

// 简式健康量表（心情温度计，BSRS-5）。六题中仅前五题计分，每题依选项
// 位置计 0-4 分；第六题（自杀意念）单独呈现，不计入总分。
var BSRS5 = register(&Instrument{
	Key:           "bsrs5",
	Title:         "心情温度计（BSRS-5）",
	QuestionCount: 6,
	OptionBase:    0,
	Dimensions: []Dimension{
		{
			Code:      "total",
			Name:      "情绪困扰程度",
			Questions: []int{1, 2, 3, 4, 5},
			Rule:      RulePositionalSum,
			Primary:   true,
			Bands: []Band{
				{Lower: 0, Upper: upper(5), Label: "身心适应良好",
					Narrative: "没有明显困扰，请继续保持自己的好心情！", Color: "green"},
				{Lower: 6, Upper: upper(9), Label: "轻度情绪困扰",
					Narrative: "建议给予情绪支持，要注意调整一下自己的压力状况，试着多放松心情。", Color: "blue"},
				{Lower: 10, Upper: upper(14), Label: "中度情绪困扰",
					Narrative: "建议寻求心理咨询或接受专业辅导。", Color: "orange"},
				{Lower: 15, Label: "重度情绪困扰",
					Narrative: "需高关怀，建议转介精神科治疗或寻求专业咨询。", Color: "red"},
			},
		},
	},
})
