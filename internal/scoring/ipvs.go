package scoring

// 亲密关系暴力量表（IPVS）。15 题，选项权重 1-5，按维度求平均分；
// 分界 1.5/2.5/3.5/4.5 为上界不含（avg < 界值）。
var IPVS = register(&Instrument{
	Key:           "ipvs",
	Title:         "亲密关系暴力量表（IPVS）",
	QuestionCount: 15,
	NeedsWeights:  true,
	Dimensions: []Dimension{
		{
			Code:      "PM",
			Name:      "权力操纵 (Power)",
			Questions: []int{1, 2, 3, 4},
			Rule:      RuleWeightedMean,
			Bands: []Band{
				{Lower: 0, Upper: upper(1.5), UpperExclusive: true, Label: "自主且受尊重", Color: "green",
					Narrative: "你在日常安排、社交与决定上大多保有自由与信任，关系像并肩的伙伴而不是上下的角色。被尊重的感觉很难得，也很珍贵。"},
				{Lower: 1.5, Upper: upper(2.5), UpperExclusive: true, Label: "偶有越界", Color: "blue",
					Narrative: "偶尔会出现被要求报备、被规定做法的时刻，但整体仍能回到彼此尊重的轨道。你的在意说明你珍惜自己的边界。"},
				{Lower: 2.5, Upper: upper(3.5), UpperExclusive: true, Label: "空间挤压", Color: "amber",
					Narrative: "你的自主空间时常被挤压，像是在“被看着生活”，久而久之会让人委屈和心累。你值得拥有自在与安心。"},
				{Lower: 3.5, Upper: upper(4.5), UpperExclusive: true, Label: "规则不对等", Color: "orange",
					Narrative: "不对等的规则成了常态，你可能经常处在解释和被否定的循环里。你依然值得体面与尊重。"},
				{Lower: 4.5, Label: "严重失衡", Color: "red",
					Narrative: "权力明显失衡，你的日常像被审查与约束包围，自主感被不断削弱。你值得拥有选择与自由。"},
			},
		},
		{
			Code:      "EB",
			Name:      "情感勒索 (Emotional)",
			Questions: []int{5, 6, 7, 8, 9, 10, 11},
			Rule:      RuleWeightedMean,
			Bands: []Band{
				{Lower: 0, Upper: upper(1.5), UpperExclusive: true, Label: "沟通良性", Color: "green",
					Narrative: "你们很少以“威胁、冷处理或内疚感”推动关系，更多是就事论事地交流。愿你持续被温柔理解与真心拥抱。"},
				{Lower: 1.5, Upper: upper(2.5), UpperExclusive: true, Label: "偶有情绪化", Color: "blue",
					Narrative: "偶尔会出现以冷淡或暗示愧疚来表达不满的片段，但关系并未被其定义。你的感受是重要的。"},
				{Lower: 2.5, Upper: upper(3.5), UpperExclusive: true, Label: "施压显现", Color: "amber",
					Narrative: "施压与内疚感开始频繁，让你不自觉把“顺从”当成“爱”的证明，内心会越来越沉。你的感受是正常的。"},
				{Lower: 3.5, Upper: upper(4.5), UpperExclusive: true, Label: "情绪风暴", Color: "orange",
					Narrative: "威胁、失联、把责任全推给你的情况经常发生，你像在一场无休止的情绪风暴中独自站立。你并不需要用受苦来换取爱。"},
				{Lower: 4.5, Label: "高压勒索", Color: "red",
					Narrative: "几乎总是依靠施压与愧疚来推进关系，亲密被恐惧取代，自我逐渐被耗空。哪怕只是让自己安静待一会儿，也是在守护自己。"},
			},
		},
		{
			Code:      "VD",
			Name:      "价值否定 (Value)",
			Questions: []int{12, 13, 14, 15},
			Rule:      RuleWeightedMean,
			Bands: []Band{
				{Lower: 0, Upper: upper(1.5), UpperExclusive: true, Label: "被欣赏", Color: "green",
					Narrative: "你很少遭遇外貌、能力或人格方面的贬低，更多时候是被欣赏与被看见。愿你持续拥有这份被认可的光。"},
				{Lower: 1.5, Upper: upper(2.5), UpperExclusive: true, Label: "偶有刺痛", Color: "blue",
					Narrative: "偶尔被比较或被质疑，会留下一点刺痛，但尚未成为关系底色。你的样子已经很好，价值不会因他人一句话抹去。"},
				{Lower: 2.5, Upper: upper(3.5), UpperExclusive: true, Label: "自我怀疑", Color: "amber",
					Narrative: "否定或嘲讽较常出现，你可能开始怀疑自己的判断与独特。请记得：你的努力和才华都依旧在那里。"},
				{Lower: 3.5, Upper: upper(4.5), UpperExclusive: true, Label: "尊严磨损", Color: "orange",
					Narrative: "贬低与羞辱经常发生，自尊与安全感被一层层磨薄。这不是你的脆弱，而是受伤后的保护。你值得被平等对待。"},
				{Lower: 4.5, Label: "严重否定", Color: "red",
					Narrative: "几乎总被否定或羞辱，像被一顶看不见的盖子压着喘不过气。能把自己放在第一位，本身就很勇敢。你的价值从未减少。"},
			},
		},
		{
			Code:    "total",
			Name:    "总体受暴程度",
			Rule:    RuleWeightedMean,
			Primary: true,
			Bands: []Band{
				{Lower: 0, Upper: upper(1.5), UpperExclusive: true, Label: "关系健康", Color: "green",
					Narrative: "你们的相处里很少出现控制、威胁或贬低的情形，关系的基本气氛是尊重、信任和轻松的。分歧出现时，多数时候仍能保有彼此的体面与好感。\n\n看到你在这段关系里感到安心和被理解，真是值得庆祝的事。愿这份被珍惜的感觉继续陪着你，也愿你一直记得：你值得这样稳定、明亮的亲密。"},
				{Lower: 1.5, Upper: upper(2.5), UpperExclusive: true, Label: "偶有波动", Color: "blue",
					Narrative: "这段关系里偶尔会冒出让你不太舒服的时刻，比如被审视或被不公平地怀疑，但更多时候仍能恢复到平和的节奏。\n\n这些波动并不否定你们之间的温度。你的在意说明你把亲密放在心上，你的感受也同样值得被温柔看见与接纳。"},
				{Lower: 2.5, Upper: upper(3.5), UpperExclusive: true, Label: "压力显现", Color: "amber",
					Narrative: "一些不对等或带压力的相处方式开始变得常见，它可能会消耗你的情绪，让你时而怀疑自己的价值与判断。\n\n如果你会感到疲惫、委屈或摇摆，那是非常可以理解的。你的敏感是一种保护本能，也是在提醒：你值得被认真对待和温柔相待。"},
				{Lower: 3.5, Upper: upper(4.5), UpperExclusive: true, Label: "高度预警", Color: "orange",
					Narrative: "控制、施压或否定的经历经常出现，关系的基调更像是在小心翼翼地维持，你需要花很多力气让自己撑住。\n\n若你常感到紧绷、惶然或心口沉重，这并不是你的问题。你已经很努力了，也值得被相信、被尊重、被好好爱。"},
				{Lower: 4.5, Label: "严重受害", Color: "red",
					Narrative: "这些让人受伤的相处方式几乎时常发生，亲密感被不安与无力感覆盖，你或许连“我是不是不够好”都会反复自问。\n\n请把心放在柔软处——你没有做错什么。能走到这里读完这些话，已经很勇敢了。你天生配得上平等与善待，这点始终都不会改变。"},
			},
		},
	},
})
