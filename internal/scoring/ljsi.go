package scoring

// 恋爱嫉妒量表（LJSI）。15 题，选项权重 1-5，按总分分区；结果附带
// 按题的作答解读（见 ljsiExplanations）。
var LJSI = register(&Instrument{
	Key:           "ljsi",
	Title:         "恋爱嫉妒测试（LJSI）",
	QuestionCount: 15,
	NeedsWeights:  true,
	Explain: func(order, score int) string {
		return ljsiExplanations[order][score]
	},
	Dimensions: []Dimension{
		{
			Code:    "total",
			Name:    "亲密警觉程度",
			Rule:    RuleWeightedSum,
			Primary: true,
			Bands: []Band{
				{Lower: 0, Upper: upper(46), Label: "关系从容区", Color: "green",
					Narrative: "你整体反应更从容，较少因第三方互动起明显波动，通常以信任与清晰边界感维持关系稳定；对聚会寒暄、旧识重逢等情景的情绪起伏较轻。"},
				{Lower: 47, Upper: upper(53), Label: "一般在意区", Color: "blue",
					Narrative: "你的在意程度与大多数人接近。面对他人对伴侣的关注或暧昧信号会有不快，但总体可控，更多体现为对亲密边界的自然警觉。"},
				{Lower: 54, Upper: upper(59), Label: "偏高在意区", Color: "amber",
					Narrative: "你对关系边界更敏感，在调情、热情互动或不透明交流等情境下更容易出现显著不快，更关注'是否越界''互动透明度'。"},
				{Lower: 60, Label: "明显在意区", Color: "orange",
					Narrative: "你在多种触发情景下反应强，亲密警觉度高；对伴侣与第三方互动的安全感与透明度要求更高，倾向快速识别可能的越界信号。"},
			},
		},
	},
})

// ljsiExplanations maps question order index and selected weight to the
// per-answer interpretation shown in the result detail list.
var ljsiExplanations = map[int]map[int]string{
	1: {
		1: "当公开社交场合出现近身互动时，你通常淡定自若，情绪稳定且不会因此怀疑关系。",
		2: "当公开社交场合出现近身互动时，你会短暂在意但很快恢复，把它视为普通社交的一部分。",
		3: "当公开社交场合出现近身互动时，你倾向先观察距离与分寸，再决定是否需要额外关注。",
		4: "当公开社交场合出现近身互动时，你会明显不快，并希望现场表现出更清晰的边界与克制。",
		5: "当公开社交场合出现近身互动时，你会强烈不快，往往立即中断交流或当面表达不适。",
	},
	2: {
		1: "当听到对他人魅力的夸赞时，你通常能以平常心对待，不把它与关系安全直接关联。",
		2: "当听到对他人魅力的夸赞时，你会略微在意但能迅速释怀，更多关注整体氛围是否得体。",
		3: "当听到对他人魅力的夸赞时，你会视语气、场合与频次而定，保持观望态度。",
		4: "当听到对他人魅力的夸赞时，你会明显不快，担心这类表达传递了模糊的亲密信号。",
		5: "当听到对他人魅力的夸赞时，你会强烈不快，并倾向认为这已触碰到你对尊重的底线。",
	},
	3: {
		1: "当他人表现出热络示好时，你通常稳住情绪，相信场面能被妥善拿捏。",
		2: "当他人表现出热络示好时，你会稍有波动但能自我调节，更看伴侣回应是否清楚。",
		3: "当他人表现出热络示好时，你会观察分寸与互动持续时间，再决定是否需要提醒。",
		4: "当他人表现出热络示好时，你会明显不快，并希望对方与伴侣及时拉开界限。",
		5: "当他人表现出热络示好时，你会强烈不快，倾向立刻干预或要求停止该互动。",
	},
	4: {
		1: "当看见与过去相关的物件时，你通常能淡然以对，不把它视作对当下的威胁。",
		2: "当看见与过去相关的物件时，你会略感介意但能很快释怀，接受其作为历史记录存在。",
		3: "当看见与过去相关的物件时，你会根据保存理由与透明度来决定是否需要进一步沟通。",
		4: "当看见与过去相关的物件时，你会明显不快，并希望明确界线以避免情感残留的困扰。",
		5: "当看见与过去相关的物件时，你会强烈不快，常将其视为对当前承诺的直接挑战。",
	},
	5: {
		1: "当看到较为活跃的社交互动时，你通常心态平稳，把它理解为开放而礼貌的交流。",
		2: "当看到较为活跃的社交互动时，你会稍微在意但能自我调整，不影响整体体验。",
		3: "当看到较为活跃的社交互动时，你会根据场合与互动尺度判断其是否仍属合宜范围。",
		4: "当看到较为活跃的社交互动时，你会明显不快，并希望对互动热度进行降温。",
		5: "当看到较为活跃的社交互动时，你会强烈不快，往往直接回避现场或提出严正质疑。",
	},
	6: {
		1: "当旁人出现暧昧示好时，你通常情绪稳定，关注的是回应是否得体而非情境本身。",
		2: "当旁人出现暧昧示好时，你会轻微在意但能自我安抚，等待清晰回应出现。",
		3: "当旁人出现暧昧示好时，你会观察对方姿态与回应边界，再决定是否需要出面提醒。",
		4: "当旁人出现暧昧示好时，你会明显不快，并期待当场给出明确而坚定的拒绝信号。",
		5: "当旁人出现暧昧示好时，你会强烈不快，倾向迅速制止并要求立刻划清界限。",
	},
	7: {
		1: "当旧识相见气氛愉快时，你一般能平和看待，把重点放在当下的互信上。",
		2: "当旧识相见气氛愉快时，你会轻微在意但可自行消化，只在细节不透明时提醒关注。",
		3: "当旧识相见气氛愉快时，你会依据交流是否公开与分寸得体来决定感受强弱。",
		4: "当旧识相见气氛愉快时，你会明显不快，并担心旧情相关的界面尚未彻底切割。",
		5: "当旧识相见气氛愉快时，你会强烈不快，容易将其视为潜在的情感回流风险。",
	},
	8: {
		1: "当注意力更多给到你身边的他人时，你通常能稳住心态，不把其解读为失衡。",
		2: "当注意力更多给到你身边的他人时，你会略有不适但可快速恢复到平衡状态。",
		3: "当注意力更多给到你身边的他人时，你会看关注的理由与时长是否合情合理。",
		4: "当注意力更多给到你身边的他人时，你会明显不快，感到自身被忽视或重要性下降。",
		5: "当注意力更多给到你身边的他人时，你会强烈不快，并倾向以沉默或离场表达不满。",
	},
	9: {
		1: "当谈笑在你出现后突然中断时，你通常先给出善意解释，不急于产生负面联想。",
		2: "当谈笑在你出现后突然中断时，你会略感在意但能放下，等待事后自然说明。",
		3: "当谈笑在你出现后突然中断时，你会依据后续解释的充分性来调整信任感。",
		4: "当谈笑在你出现后突然中断时，你会明显不快，并倾向推断其中存在刻意隐瞒。",
		5: "当谈笑在你出现后突然中断时，你会强烈不快，直接视其为不透明与回避的明确信号。",
	},
	10: {
		1: "当对方在公共场合久未露面时，你通常能耐心等待并保持情绪稳定。",
		2: "当对方在公共场合久未露面时，你会略感不安但不至于持续发酵，愿意给出时间缓冲。",
		3: "当对方在公共场合久未露面时，你会依据事后的解释是否合理来决定是否追问。",
		4: "当对方在公共场合久未露面时，你会明显不快，更期待实时沟通与行程透明。",
		5: "当对方在公共场合久未露面时，你会强烈不快，通常要求立即说明并恢复可见性。",
	},
	11: {
		1: "当出现带有玩笑意味的轻度暧昧时，你通常分辨得清，不会轻易夸大其影响。",
		2: "当出现带有玩笑意味的轻度暧昧时，你会小幅波动但能自我调适，关注是否点到为止。",
		3: "当出现带有玩笑意味的轻度暧昧时，你会看场景与界限提示是否到位再评估感受。",
		4: "当出现带有玩笑意味的轻度暧昧时，你会明显不快，并倾向将其视为接近越界的信号。",
		5: "当出现带有玩笑意味的轻度暧昧时，你会强烈不快，难以接受任何模糊不清的亲密暗示。",
	},
	12: {
		1: "当对方多次夜间独处外出时，你通常能以开放心态理解其放松需求。",
		2: "当对方多次夜间独处外出时，你会略有在意但可自我安抚，关注频次是否合理。",
		3: "当对方多次夜间独处外出时，你会依据去向说明、时段安排与安全性来调整态度。",
		4: "当对方多次夜间独处外出时，你会明显不快，更重视边界、节制与对关系的照顾度。",
		5: "当对方多次夜间独处外出时，你会强烈不快，往往直接把它视为对稳定与信任的不利信号。",
	},
	13: {
		1: "当听到别人对其吸引力的评价时，你通常能淡定接纳，不改变基本安全感。",
		2: "当听到别人对其吸引力的评价时，你会轻微波动但很快回到理性与平衡。",
		3: "当听到别人对其吸引力的评价时，你会依据表达的语境与分寸来决定在意程度。",
		4: "当听到别人对其吸引力的评价时，你会明显不快，担心由此引出不必要的暧昧联想。",
		5: "当听到别人对其吸引力的评价时，你会强烈不快，并倾向要求减少此类话题的出现。",
	},
	14: {
		1: "当涉及过往的私密信息时，你通常能尊重适度的边界而不产生焦虑。",
		2: "当涉及过往的私密信息时，你会略有在意但能等待后续自愿说明。",
		3: "当涉及过往的私密信息时，你会根据隐私理由是否充分与一致来决定是否介入。",
		4: "当涉及过往的私密信息时，你会明显不快，并倾向认为透明度不足影响了信任。",
		5: "当涉及过往的私密信息时，你会强烈不快，通常把它视为严重的界限问题需立即澄清。",
	},
	15: {
		1: "当面对与陌生人的高热度互动时，你一般能理解为礼貌与外向，不会过度解读。",
		2: "当面对与陌生人的高热度互动时，你会轻微不适但能很快平复，把重心放回整体氛围。",
		3: "当面对与陌生人的高热度互动时，你会依据场景、持续时间与距离感来综合判断。",
		4: "当面对与陌生人的高热度互动时，你会明显不快，担心礼貌边界被冲淡。",
		5: "当面对与陌生人的高热度互动时，你会强烈不快，往往直接中止互动并表达明确立场。",
	},
}
