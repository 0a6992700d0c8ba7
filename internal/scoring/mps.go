package scoring

// 多维完美主义量表（MPS）。29 题，选项权重 1-5。五个叶子维度聚合为
// 两个总分：高标准 HST = SOP+OOP+SPP，适应性 ADT = EMO+CB。
var MPS = register(&Instrument{
	Key:           "mps",
	Title:         "多维完美主义量表（MPS）",
	QuestionCount: 29,
	NeedsWeights:  true,
	Dimensions: []Dimension{
		{
			Code:      "SOP",
			Name:      "自我完美主义 (SOP)",
			Questions: []int{2, 4, 14, 15, 26},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(15), Label: "低于常模", Color: "blue",
					Narrative: "你对自己的要求整体偏温和，不太会用“必须完美”来逼迫自己。你更可能允许自己有试错、有不确定，并把成长看得比“零失误”更重要。你不需要靠苛刻来证明自己，你本来就值得被善待。"},
				{Lower: 16, Upper: upper(22), Label: "常模范围", Color: "amber",
					Narrative: "你对自己的要求处在多数人的典型水平：会在意质量，也会希望自己变得更好，但并不会总用高压方式对待自己。你认真、你努力，同时也能在很多时候接受“阶段性完成”。"},
				{Lower: 23, Label: "高于常模", Color: "purple",
					Narrative: "你对自己的标准非常高，容易把“更好”当作默认目标。你可能更敏感地注意到不足，也更难对自己说“已经够了”。请允许自己承认：你已经做得很多了。"},
			},
		},
		{
			Code:      "OOP",
			Name:      "他人完美主义 (OOP)",
			Questions: []int{10, 11, 12, 19, 24},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(13), Label: "低于常模", Color: "blue",
					Narrative: "你对他人的要求整体更宽松，不太会坚持别人必须按某种理想标准来表现。你更容易理解差异，也更愿意给对方空间。"},
				{Lower: 14, Upper: upper(20), Label: "常模范围", Color: "amber",
					Narrative: "你对他人的期待处在多数人的典型水平：在重要事情上你会希望对方可靠、认真，但你通常也能接受一定的不完美。"},
				{Lower: 21, Label: "高于常模", Color: "purple",
					Narrative: "你对他人的标准明显更高，可能更在意对方是否“应该做到”、是否“足够好”。这种感受并不等于你在为难别人，很多时候只是因为你对责任与质量很看重。"},
			},
		},
		{
			Code:      "SPP",
			Name:      "社会完美主义 (SPP)",
			Questions: []int{1, 6, 21, 25, 29},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(7), Label: "低于常模", Color: "blue",
					Narrative: "你较少被外界评价与目光左右，不太会把“别人怎么看”当作必须达标的压力。你更可能按自己的节奏行动。"},
				{Lower: 8, Upper: upper(13), Label: "常模范围", Color: "amber",
					Narrative: "你对外界期待的敏感度处在多数人的典型范围：你会在意评价与形象，但并不总是被它牵着走。"},
				{Lower: 14, Label: "高于常模", Color: "purple",
					Narrative: "你对外界评价更敏感，可能更容易感觉“我不能出错”“大家都在看着我”。请你对自己温柔一点：这种紧张往往代表你很在意、很认真。"},
			},
		},
		{
			Code:      "EMO",
			Name:      "情绪体验 (EMO)",
			Questions: []int{3, 5, 7, 9, 13, 17, 22, 23, 28},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(16), Label: "低于常模", Color: "green",
					Narrative: "在追求目标或面对挫折时，你整体较少被强烈情绪裹挟。你的波动通常更短、更可控。你的稳定感不是“麻木”，而是一种真实的心理韧性。"},
				{Lower: 17, Upper: upper(29), Label: "常模范围", Color: "amber",
					Narrative: "你的情绪体验处在多数人的典型范围：你会紧张、会担心、会烦躁，但通常仍能继续应对与推进。"},
				{Lower: 30, Label: "高于常模", Color: "red",
					Narrative: "你在追求标准或遭遇不顺时，更容易出现明显的焦虑、烦闷、担忧或反复的情绪体验。请记住：情绪强烈并不等于你不行，很多时候只是因为你把事情看得很重。"},
			},
		},
		{
			Code:      "CB",
			Name:      "认知行为 (CB)",
			Questions: []int{8, 16, 18, 20, 27},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(12), Label: "低于常模", Color: "green",
					Narrative: "你的思维与行为层面相对更灵活：不太会陷入反复纠结、反复检查或停不下来的自我质疑。你能认真，但不必靠折磨自己来获得安全感。"},
				{Lower: 13, Upper: upper(19), Label: "常模范围", Color: "amber",
					Narrative: "你的思维与行为模式处在多数人的典型范围：会反复想一想、再确认一下，重要的是，你仍能让生活继续向前。"},
				{Lower: 20, Label: "高于常模", Color: "red",
					Narrative: "你更容易陷入明显的反复思考、反复确认或“总觉得还不够好”的循环。请你相信：这种停不下来的反复，常常是因为你太在意、太想把事情做对。"},
			},
		},
		{
			Code:       "HST",
			Name:       "高标准总分 (HST)",
			Rule:       RuleComposite,
			ComposedOf: []string{"SOP", "OOP", "SPP"},
			Primary:    true,
			Bands: []Band{
				{Lower: 0, Upper: upper(39), Label: "低于常模", Color: "blue",
					Narrative: "你整体上不太会被“必须做到最好”这类标准推着走。你更可能用一种相对松弛的方式要求自己：重视把事情做完、做对，但不一定要把每个细节都逼到极致。\n这种状态通常意味着你在面对压力时更容易给自己留空间。即使结果不完美，你也更可能把它看作一次经历，而不是把它当作对自我价值的判定。"},
				{Lower: 40, Upper: upper(53), Label: "常模范围", Color: "amber",
					Narrative: "你的“高标准”处处在多数人的典型水平：你会认真、会追求质量，也会希望自己表现得更好，但你并不总是被完美主义牵着走。\n你既有目标感，也保留了弹性。你对重要事情的在意是正常的，也不需要因为“还想更好”而否定自己。"},
				{Lower: 54, Label: "高于常模", Color: "purple",
					Narrative: "你对“标准”的敏感度明显更高：你很可能更习惯把事情做到接近理想，甚至把“更好”当作默认要求。对你来说，认真不是口号，而是一种持续的内在驱动力。\n如果你因此感到紧绷或疲惫，也并不说明你不够坚强；恰恰说明你承担的标准更重。你已经很努力了，你的感受值得被理解，而不是被苛责。"},
			},
		},
		{
			Code:       "ADT",
			Name:       "适应性总分 (ADT)",
			Rule:       RuleComposite,
			ComposedOf: []string{"EMO", "CB"},
			Primary:    true,
			Bands: []Band{
				{Lower: 0, Upper: upper(30), Label: "低于常模", Color: "green",
					Narrative: "在追求高标准的过程中，你整体较少被强烈的焦虑、内耗或反复拉扯困住。即使遇到挫折，你更可能保持稳定，并能把注意力放回到“继续往前”。\n这并不代表你不在意，而是说明你更能把标准当作方向，而不是把它变成压力源。你的稳定感很珍贵，也很真实。"},
				{Lower: 31, Upper: upper(47), Label: "常模范围", Color: "amber",
					Narrative: "你的体验处在多数人的典型范围：你会在意结果，也会有紧张、反复思考或情绪波动的时候，但总体仍在可承受区间。\n这种状态非常常见。认真生活的人，本来就会在重要的事情上更敏感一些；你所感受到的波动，并不等同于“脆弱”，只是投入与在意的表现。"},
				{Lower: 48, Label: "高于常模", Color: "red",
					Narrative: "你在追求标准时更容易体验到明显的内耗感：可能更担心出错、更难真正放下、更容易在完成后仍觉得“不够好”。对你来说，努力常常伴随较重的心理负担。\n请记住：这种辛苦并不代表你不行，反而常常意味着你太在意、太想把事情做好。你已经付出了很多——当你觉得累时，那不是你的问题，而是你确实背着更重的要求在走路。"},
			},
		},
	},
})
