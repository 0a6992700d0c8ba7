package scoring

// 贝克绝望量表（BHS）。20 题，依选项位置计 1-5 分；正向题
// {1,3,5,6,8,10,13,15,19} 顺向，其余题目反向计分（5-位置）。
var BHS = register(&Instrument{
	Key:           "bhs",
	Title:         "贝克绝望量表（BHS）",
	QuestionCount: 20,
	OptionBase:    1,
	Reverse:       []int{2, 4, 7, 9, 11, 12, 14, 16, 17, 18, 20},
	Dimensions: []Dimension{
		{
			Code:    "total",
			Name:    "绝望水平",
			Rule:    RulePositionalSum,
			Primary: true,
			Bands: []Band{
				{Lower: 20, Upper: upper(32), Label: "低绝望水平", Color: "green",
					Narrative: "你对未来仍能保有亮光与方向，偶有阴天，但并不遮住你的脚步。请把这份稳定放在心上——它说明你在困难时依然能看见可行的路，这很不容易、也很珍贵。"},
				{Lower: 33, Upper: upper(52), Label: "轻度绝望", Color: "yellow",
					Narrative: "有时你会担心前路、觉得目标不在身边，但这些念头并没有占据全部。请也为自己看到：你仍在寻找可以把心安放的位置。情绪像天气，会来会去；而你并不等于这些天气。"},
				{Lower: 53, Upper: upper(76), Label: "中度绝望", Color: "orange",
					Narrative: "最近「看不到出口」的感觉更常出现，乐观与把握感容易被打散。先给自己一点点善意：你已经很努力了，感到疲惫并不代表你失败。你值得被理解与陪伴，也值得在他人目光里慢慢变得轻松。"},
				{Lower: 77, Label: "重度绝望", Color: "red",
					Narrative: "当下也许像一段很长的黑夜，几乎所有努力都显得无力。请把这句话收下：你不是一个人。此刻的感受可以被看见、被相信、被理解；它们不会定义你的一生，也不会永远停在今天。若心里很难熬，请告诉一个你信任的人，让一句「我在这儿」先落到你身边；当你愿意时，专业的支持会耐心地站在你这边，和你一起等到天色变浅。"},
			},
		},
	},
})
