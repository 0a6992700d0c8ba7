package scoring

// 亲密关系问卷（CRQ）。14 题，依选项位置计 1-5 分，第 11-14 题反向
// 计分（5-位置）。
var CRQ = register(&Instrument{
	Key:           "crq",
	Title:         "亲密关系测试（CRQ）",
	QuestionCount: 14,
	OptionBase:    1,
	Reverse:       []int{11, 12, 13, 14},
	Dimensions: []Dimension{
		{
			Code:    "total",
			Name:    "亲密关系质量",
			Rule:    RulePositionalSum,
			Primary: true,
			Bands: []Band{
				{Lower: 14, Upper: upper(46), Label: "低于常模，建议关注", Color: "orange",
					Narrative: "本次测评结果显示，您在信任、情绪分享与相互理解方面承受一定压力。相处中更容易出现依赖揣测而非直接表达的情形，偶有怀疑或回避请求的反应，对「被欣赏/被支持」的主观体会也相对不足。在健康、财务、家务分工等关键议题上，彼此的知情度和共识度可能不够稳定。建议在不指责的前提下，建立每周一次的高质量沟通（约 20–30 分钟，聚焦「这周让我感到被支持的一件事 / 需要改进的一件事」），优先明确 1–2 个具体情境的可执行约定（如家务轮值表、固定财务月检视、就医信息共享），并使用「我的感受/需要/请求」句式减少防御与误解。同步增加积极反馈（每天至少一次具体称赞），观察 2–4 周内的变化并复盘，逐步累积正向互动。"},
				{Lower: 47, Upper: upper(63), Label: "亲密稳健区", Color: "blue",
					Narrative: "整体关系处于一般—良好区间：能够体验到陪伴的愉快与被欣赏，也能在一定程度上把握彼此想法与性格；偶尔仍会出现表达不够直接或误读对方意图的情况。建议巩固已有优势并做小幅增益：保持每周一次 30 分钟的双向表达（先理解再回应），每月一次两人专属活动（不被工作/育儿打断），在健康与财务上维持信息透明与角色分工清单（谁负责记录、谁负责对账、复盘频率）。如短期内发现怀疑增多、负面评论变频、或回避提出需求的情况，请把下一次沟通聚焦在「如何让彼此更易于开口」，从具体行为而非动机推断入手，减少摩擦。"},
				{Lower: 64, Upper: upper(70), Label: "亲密优势区", Color: "green",
					Narrative: "您与伴侣在信任、亲密与协作上具备明显优势：彼此能觉察与回应对方需求，在健康、财务等关键议题上拥有较好的知情度与共识，遇到问题更倾向于共同解决而非互相指责。建议固化有效惯例并面向未来设定共享目标：持续每日的简短情感连接（例如「1 句感谢 + 30 秒拥抱」），维持每周高质量沟通与每月约会；就三年内的共同计划（财务储备、健康运动、亲密关系与家庭体验）设定里程碑与分工；为突发压力情境预备「冷静期 + 复盘框架」（暂停—情绪命名—需求澄清—下一步行动），以保持关系的韧性与活力。"},
			},
		},
	},
})
