package scoring

// 多维度宿命感量表（MFSG）。16 题，每题依选项位置计 1-4 分，总分越高
// 表示外控/宿命取向越强。
var MFSG = register(&Instrument{
	Key:           "mfsg",
	Title:         "宿命感测试（MFSG）",
	QuestionCount: 16,
	OptionBase:    1,
	Dimensions: []Dimension{
		{
			Code:    "total",
			Name:    "控制点取向",
			Rule:    RulePositionalSum,
			Primary: true,
			Bands: []Band{
				{Lower: 0, Upper: upper(27), Label: "高自我掌控取向（高内控）", Color: "green",
					Narrative: "您更倾向将结果归因为个人的选择、努力与策略执行，主观掌控感显著。面对目标，通常会主动设定路径与里程碑，并在进展受阻时通过调整方法、提升效率或学习新技能来恢复推进力。您对\"努力—结果\"的因果链保持稳定信念，较少依赖运气解释事件变化；在信息不完全时，也倾向以分析与实验来缩小不确定性。整体上表现为计划性强、行动取向明确、自我效能感高，能在多数情境下维持对局面的把握与推进。"},
				{Lower: 28, Upper: upper(37), Label: "倾向自我掌控（偏内控）", Color: "blue",
					Narrative: "您总体相信\"事在人为\"，同时承认情境与偶然性对结果的影响。在重要决策上通常会先制定计划并亲自推动，但若外部条件发生明显变化，也能及时评估并适度修正路径。您对自身影响力有稳定预期，能在现实约束与个人意愿之间取得平衡；在资源受限或变量较多时，偶尔会以\"运气/时机\"来解释结果波动，但核心判断仍以可控行动为主轴。整体呈现为务实、灵活且能自我驱动的风格。"},
				{Lower: 38, Upper: upper(48), Label: "倾向外界影响（偏外控）", Color: "orange",
					Narrative: "您更容易感知情境、制度、时机与他人决策等外部因素对结果的作用，个人努力的重要性依然存在，但相对次要。在复杂或高度不确定的情境下，您更愿意等待信息明朗、资源到位或\"窗口期\"出现，再启动关键行动；同时也较少将波动完全归咎于个人能力，而是从环境与运气角度理解起伏。这种取向有助于理解系统性限制并减少不必要的自责，但也意味着在推进关键事项时更依赖外部条件成熟与配套支持。"},
				{Lower: 49, Label: "高外界影响取向（高外控）", Color: "red",
					Narrative: "您通常把事件结果视为由环境、运气或更大的外在力量主导，个人对局面的直接掌控感相对较低。面对重大选择与突发情况时，更倾向\"顺其自然\"或依据他人/环境信号做出响应，对成功与挫折均以外部因素作为主要解释框架。您对不确定性的接受度较高，能以宿命/机运视角理解生活变化；在推进关键目标时，则更依赖外部机会、支持与情境变化来带动进展。整体呈现为对环境敏感、解释框架外向、以情境为先的认知与决策风格。"},
			},
		},
	},
})
