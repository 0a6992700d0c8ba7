package scoring

// 健康促进生活形态量表（HPLS）。40 题，选项权重 1-4，分六个子维度
// 计分，总分为六个子维度之和。
var HPLS = register(&Instrument{
	Key:           "hpls",
	Title:         "健康促进生活形态量表（HPLS）",
	QuestionCount: 40,
	NeedsWeights:  true,
	Dimensions: []Dimension{
		{
			Code:      "HR",
			Name:      "健康责任 (HR)",
			Questions: []int{1, 6, 12, 14, 19, 24, 28, 32, 35, 38, 40},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(19), Label: "较差", Color: "orange",
					Narrative: "你与医疗与健康信息的距离还比较远，很多时候是等到问题显性化才会处理。并非你不重视，而是“不知道从哪儿开始”更真切。\n从一件最简单、最具体的事开头：做一次应有的检查、整理一份家用常备清单、把重要的健康资料收进一个文件夹。当你迈出这一步，你会惊喜地发现安心感来自确定，而确定来自行动。"},
				{Lower: 20, Upper: upper(27), Label: "一般", Color: "amber",
					Narrative: "你能在需要时求助专业人士，但平时较少做主动的记录与规划。健康责任像任务清单里的选做题，常常被更紧急的工作盖过去。\n把健康放回“常规设置”：给体检、复诊和疫苗各腾出一个固定的档期，像安排会议一样对待它们。你会感到，照顾自己不是浪费，而是让未来更省力的投资。"},
				{Lower: 28, Upper: upper(35), Label: "良好", Color: "blue",
					Narrative: "你愿意主动学习健康知识，也会把建议落实到生活中。对你来说，理解与行动是一体两面，这让你在面对不适或疑问时更有底气。\n接下来可以关注信息的质量与消化度：选取可信来源，理解背后的理由，再转化为适合自己的做法。你的健康素养会因此更扎实，你的内心也会更笃定。"},
				{Lower: 36, Label: "优秀", Color: "green",
					Narrative: "你与专业世界的沟通顺畅，能把零散的建议整合成可执行的方案。你在为自己负责，这份成熟令人放心。\n保持敏锐，也保持节制。让自己不被海量信息裹挟，只接纳那些真正可验证、可落实、对你当下有用的内容。这样，清晰就会一直在。"},
			},
		},
		{
			Code:      "PA",
			Name:      "体育活动 (PA)",
			Questions: []int{2, 8, 15, 21, 26, 31, 37, 39},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(14), Label: "较差", Color: "orange",
					Narrative: "运动在你的生活中还不够常驻，身体像在“省电模式”下运行，偶尔提速便容易疲惫。不是你不想动，而是你还没找到那种“让人愿意重复”的方式。\n先从能让你微微出汗的日常走起，让步数与拉伸成为今天就能做到的事。当你的身体重新想起轻快的感觉，运动会从任务变成选择，从负担变成礼物。"},
				{Lower: 15, Upper: upper(20), Label: "一般", Color: "amber",
					Narrative: "你有一定的活动量，但强度、心率目标或力量训练还不够明确。身体在前进，只是还缺一个更清晰的方向盘。\n把关注点放在“感受更好”而非“做得更多”。找到适合你的节奏与项目，让心肺、力量与灵活性彼此配合。你会发现，运动真正的回报，是把你带回热爱生活的自己。"},
				{Lower: 21, Upper: upper(26), Label: "良好", Color: "blue",
					Narrative: "你的运动计划清晰且稳定，身体正以你喜欢的方式变得可靠。你对自己有期待，也愿意为之投入。\n保持这份热情，同时也照看好恢复。当你愿意在进步与休息之间找到平衡，成绩会更稳、状态会更久，而运动会成为你生命里真正长情的伙伴。"},
				{Lower: 27, Label: "优秀", Color: "green",
					Narrative: "你对训练强度与目标的拿捏很成熟，监测与反馈帮你持续进步。你与自己的身体在合作，而不是较劲。\n适时为自己安排“卸载”的周期，让肌肉与神经系统在放松里重建。运动的尽头不是数字，而是一个自如、自在、可持续的你。"},
			},
		},
		{
			Code:      "N",
			Name:      "营养 (N)",
			Questions: []int{3, 9, 16, 22, 27, 34},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(10), Label: "较差", Color: "orange",
					Narrative: "你的饮食像一辆忙碌的车，油箱时满时空，质量也不稳定。不是你不想吃得好，而是节奏太快，常常只能“有什么吃什么”。\n为自己留出一点准备的时间：早餐先稳住，蔬果先到位，再慢慢看懂标签和搭配。当身体获得更稳定的能量，你会更愿意继续对自己好，饮食也会回馈给你一个更轻松的白天。"},
				{Lower: 11, Upper: upper(15), Label: "一般", Color: "amber",
					Narrative: "你的结构基本合理，但在忙碌或社交时容易随意，蔬果、优质蛋白和加餐的平衡偶有走样。你知道大方向，只是细节还可以更从容。\n把“可复制的选择”放进行囊：几种习惯性的早餐、几款顺手的加餐、几家让你放心的外卖。当决定变简单，好的选择更容易发生，饮食也能成为你信任的伙伴。"},
				{Lower: 16, Upper: upper(19), Label: "良好", Color: "blue",
					Narrative: "你已经能做到多样化和适度，懂得如何读标签并据此做选择。饮食给了你稳定的能量，也让你对身体的感觉更明晰。\n接下来不妨在“质量”上下些功夫：在健康与愉悦之间寻找更舒服的比例，让餐桌既有营养也有幸福感。你会发现，越放松，越能长久。"},
				{Lower: 20, Label: "优秀", Color: "green",
					Narrative: "你的膳食结构均衡而稳定，规则不是束缚，而是你为自己铺好的路。你清楚自己需要什么，也懂得如何把它放在每天的盘子里。\n别忘了给自己一些弹性：允许偶尔的随性与分享，让饮食服务于生活的丰盛，而不是与之对抗。那样，你会更爱你与食物之间这段关系。"},
			},
		},
		{
			Code:      "SG",
			Name:      "精神成长 (SG)",
			Questions: []int{7, 13, 20, 29, 36},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(8), Label: "较差", Color: "orange",
					Narrative: "你与目标感、意义感之间暂时有些距离，很多时候是被外部推着走。并非你没有追求，而是你还没来得及把目光放回自己。\n从当下最在意的一件小事开始，让它在你的日历里占据一个具体的位置。当你为自己而做，并在小小的完成里看见价值，内在的火种会重新变亮。"},
				{Lower: 9, Upper: upper(12), Label: "一般", Color: "amber",
					Narrative: "你有方向，也有热情，但落实常常松散，容易被日常的琐碎吞没。你知道什么重要，却不总能给它足够的时间。\n不妨把远处的灯塔拉近一些：把它拆成可以在两周内看见成果的小步骤。在一次次可见的进展里，你会越来越相信自己，也更愿意把时间花给真正重要的事。"},
				{Lower: 13, Upper: upper(16), Label: "良好", Color: "blue",
					Narrative: "你对自己看重的事情有清晰的认识，也愿意持续投入。成长不再是口号，而是你每天在走的路。\n试着让“学习—输出—回馈”形成闭环：把所学讲给别人听，或者化成一个小作品。当意义能够被分享，你会更深地感受到自己在向前。"},
				{Lower: 17, Label: "优秀", Color: "green",
					Narrative: "你拥有强烈而稳定的目标感，能在变化中持续更新自己。你知道该走向哪里，也知道如何在路上照顾好自己。\n别忘了给自己留白。允许偶尔的停驻与游玩，让心在轻松里生长、在丰盛里丰盈。那样，你的方向更稳，你的步伐也更轻。"},
			},
		},
		{
			Code:      "IR",
			Name:      "人际关系 (IR)",
			Questions: []int{4, 10, 17, 23, 30},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(8), Label: "较差", Color: "orange",
					Narrative: "你与他人的连接暂时偏少，赞美或求助不太容易说出口，很多感受更习惯自己消化。不是你不在乎关系，而是你在保护自己，或不确定如何开一个好头。\n先从一件最简单的事开始：把对身边人的一次真实欣赏说出来，或认认真真地回应一条信息。当你允许关系里多一点“被看见”和“被理解”，你会感觉到支持在慢慢聚拢，生活的温度也会随之升高。"},
				{Lower: 9, Upper: upper(12), Label: "一般", Color: "amber",
					Narrative: "你有基础的连接与互动，但节奏容易被繁忙打乱，热络与疏离像潮汐一样来回。你在关系里的分寸感不错，只是还欠一点点稳定。\n把联系变成生活的一部分，而不是额外的任务：固定一个轻松的相处时刻，或者为共同的兴趣留一块小空间。关系的养分来自日常的点滴，当这些微小的片段多起来，亲密和信任就会稳稳扎根。"},
				{Lower: 13, Upper: upper(16), Label: "良好", Color: "blue",
					Narrative: "你乐于给予和接收支持，互动自然而真诚。在重要的人面前，你愿意花时间，也愿意为对方“多走一步”。这份良好的互信，正在悄悄守护你的情绪与韧性。\n可以试着把心里的关心表达得再具体一些，或在出现分歧时多一点耐心的倾听。良好的关系不是没有冲突，而是有修复的能力。你已经走在很好的路上，继续这样用心，幸福会更可感。"},
				{Lower: 17, Label: "优秀", Color: "green",
					Narrative: "你的人际网络温暖而可靠，给予与接纳在你身上形成了自然的循环。当需要的时候，你敢于求助；当被需要的时候，你也愿意在场。\n也请照顾好自己：帮助他人不必以牺牲为代价。适度的边界能让你在长期里保持热情和能量，而不会在无形中被消耗。这样，你的温柔与力量才能更长久地陪伴彼此。"},
			},
		},
		{
			Code:      "SM",
			Name:      "压力管理 (SM)",
			Questions: []int{5, 11, 18, 25, 33},
			Rule:      RuleWeightedSum,
			Bands: []Band{
				{Lower: 0, Upper: upper(8), Label: "较差", Color: "orange",
					Narrative: "压力像潮水，退下去又涌上来，你还没来得及休整，就被下一波推着走。你并非不想轻松一点，只是缺少一两个真正“为自己而设”的放松锚点。\n给自己一个可以每天靠近的小港湾：哪怕是十分钟的安静、一次缓慢呼吸、一次与身体对话。当你愿意停一停，情绪会逐渐可辨，生活会在你能掌控的节奏里重新排布。"},
				{Lower: 9, Upper: upper(12), Label: "一般", Color: "amber",
					Narrative: "你已经会在部分场景中自我安抚，但规律性不够，恢复常常来得慢一些。你知道“该怎么做”，只是在忙碌里很难“每次都做到”。\n不必追求完美，把放松当作日程中与工作同等重要的一项。让它成为你生活的背景乐，而不是临时被想起的救火工具。慢慢地，你会感到疲惫不再积压，心也更愿意松开。"},
				{Lower: 13, Upper: upper(16), Label: "良好", Color: "blue",
					Narrative: "你能区分哪些可以努力、哪些需要接纳，放松方式也比较稳定。压力来时，你能给自己适度的空间，这让你少了许多无谓的内耗。\n继续保持对自身信号的敏感，并为“高压周”准备一份简化版的生活安排：睡眠、饮食、运动都略微收束。你会发现，准备得越从容，越能把生活握在手心里。"},
				{Lower: 17, Label: "优秀", Color: "green",
					Narrative: "你对压力的识别与应对已经形成体系，既能迅速调整，也能温柔自持。你明白，恢复不是奢侈，而是为了走更远。\n也请容许自己偶尔“什么都不做”。当身心真正得到休息，创造力与韧性会以更轻盈的姿态回到你身上。"},
			},
		},
		{
			Code:       "total",
			Name:       "健康促进生活形态",
			Rule:       RuleComposite,
			ComposedOf: []string{"HR", "PA", "N", "SG", "IR", "SM"},
			Primary:    true,
			Bands: []Band{
				{Lower: 0, Upper: upper(69), Label: "较差", Color: "orange",
					Narrative: "你现在与健康相关的很多想法还停留在“知道但难以坚持”的阶段，节律像忽明忽暗的灯，亮的时候能带你走一段，忙起来又会被打断。这并不说明你意志力差，而是说明现实负荷确实很重、可用的时间和能量被持续分走了。\n从今天起，给自己一个可落地的起点：先把一天里最容易做的小动作固定下来，让身体和生活重新感到“可掌控”。当你把第一块小砖稳稳砌好，第二块会容易很多，情绪也会慢慢稳定，动力会在“看见变化”的瞬间自然回来。"},
				{Lower: 70, Upper: upper(99), Label: "一般", Color: "amber",
					Narrative: "你已经拥有几项不错的健康习惯，只是它们像星星，时而明亮、时而被云遮住。整体状态不错，但在高压的时候仍会“失守”，饮食、运动或睡眠中的某一环常常拖了后腿。\n不妨挑一个你最在意、又最容易推进的点，专注于把它变成真正的“日常设置”。当这个点变稳了，再温和地带动另一个点。你会发现，一致性带来的确定感，会让你更愿意对自己友好，也更容易把生活安排成你喜欢的样子。"},
				{Lower: 100, Upper: upper(129), Label: "良好", Color: "blue",
					Narrative: "你已经形成了相对稳定的健康节律，饮食、运动、压力管理或健康责任里总有一两项是亮点。你的身体和情绪总体表现出良好的恢复力，日常的忙碌并没有轻易打乱你对自我照顾的重视。\n接下来更像是“微调的艺术”：在维持主旋律的同时，为强项设置温柔的边界，避免用力过猛；为短板留出一点弹性空间，让它们在不被指责的氛围里慢慢变好。这样做既能守住手里的“确定”，又能持续看见新的进步。"},
				{Lower: 130, Label: "优秀", Color: "green",
					Narrative: "你的健康行为已经内化为稳定、自然的生活方式：你会规划，也会倾听身体信号，能在忙碌与恢复之间切换自如。这是一份长期投资的回报，它让你更有底气面对不确定。\n也提醒你偶尔松一松：过度自律有时会悄悄透支愉悦与社交。给自己安排一点“无任务的白天”，把注意力放回兴趣、自然和重要的人身上。你会发现，真正持久的健康，总是与轻松、热爱和联结相伴。"},
			},
		},
	},
})
