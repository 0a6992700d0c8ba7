package scoring

// 心理年龄测试。30 题三选项（是/不确定/否），每题带独立权重
// （多数 2/1/0，部分加权题 4/2/0 或反向 0/1/2），按加权总分映射年龄段。
var PsychAge = register(&Instrument{
	Key:           "psychological_age",
	Title:         "心理年龄测试",
	QuestionCount: 30,
	NeedsWeights:  true,
	Dimensions: []Dimension{
		{
			Code:    "total",
			Name:    "心理年龄",
			Rule:    RuleWeightedSum,
			Primary: true,
			Bands: []Band{
				{Lower: 0, Upper: upper(29), Label: "20～29岁", Color: "emerald",
					Narrative: "您的心理年龄非常年轻，充满朝气和活力，继续保持这份热情！"},
				{Lower: 30, Upper: upper(49), Label: "30～39岁", Color: "green",
					Narrative: "您的心理年龄充满活力，建议继续保持好奇心和探索精神。"},
				{Lower: 50, Upper: upper(64), Label: "40～49岁", Color: "blue",
					Narrative: "您的心理年龄处于中年期，建议平衡工作与生活，培养兴趣爱好。"},
				{Lower: 65, Upper: upper(74), Label: "50～59岁", Color: "amber",
					Narrative: "您的心理年龄趋于成熟，建议保持学习新事物的热情，多运动保持身心活力。"},
				{Lower: 75, Label: "60岁以上", Color: "orange",
					Narrative: "您的心理年龄相对成熟稳重，建议保持积极的生活态度，多参与社交和智力活动。"},
			},
		},
	},
})
