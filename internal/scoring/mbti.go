package scoring

// MBTI 性格测试。28 题分四个维度，每维 7 题；选项权重编码字母
// （1=E 2=I 3=N 4=S 5=F 6=T 7=J 8=P），按多数定字母，平局取第二字母。
// 总分把四字母编码为四位数（如 ISTJ → 2111）。
var MBTI = register(&Instrument{
	Key:           "mbti",
	Title:         "MBTI 性格测试",
	QuestionCount: 28,
	NeedsWeights:  true,
	Pairs: []LetterPair{
		{First: 'E', Second: 'I', FirstWeight: 1, SecondWeight: 2, From: 1, To: 7},
		{First: 'S', Second: 'N', FirstWeight: 4, SecondWeight: 3, From: 8, To: 14},
		{First: 'T', Second: 'F', FirstWeight: 6, SecondWeight: 5, From: 15, To: 21},
		{First: 'J', Second: 'P', FirstWeight: 7, SecondWeight: 8, From: 22, To: 28},
	},
	LetterScores: map[byte]int{
		'E': 1000, 'I': 2000,
		'S': 100, 'N': 200,
		'T': 10, 'F': 20,
		'J': 1, 'P': 2,
	},
	Types: map[string]TypeProfile{
		"ESTJ": {Name: "大男人型", Narrative: "讲实际、重现实、公事公办;由于有天生的商业或机械学头脑, 所以对抽象理论不感兴趣; 希望学习以使可以直接和立即应用。喜欢组织和参与活动; 通常能做优秀的领导人; 果断、迅速行动起来执行决定; 考虑日常事务的各种细节。"},
		"ESTP": {Name: "挑战型", Narrative: "擅长于现场解决问题。喜欢行动, 对任何的进展都感到高兴。往往喜好机械的东西和运动, 并愿意朋友在旁边。善应变、容忍、重实效; 集中精力于取得成果。不喜多加解释。最喜好能干好、能掌握、能分析、能合一的交际事物。"},
		"ESFJ": {Name: "主人型", Narrative: "热心、健谈、受欢迎, 有责任心的天生的合作者, 积极的委员会成员。要求和谐并可能长于创造和谐。经常为别人做好事。能得到鼓励和赞扬时工作最出色。主要的兴趣在于那些对人们的生活有直接和明显的影响的事情。"},
		"ESFP": {Name: "表演型", Narrative: "开朗、随和、友善、喜欢一切并使事物由于他们的喜好而让别人感到更有兴趣。喜欢行动并力促事情发生。他们了解正在发生的事情并积极参与。认为记住事实比掌握理论更为容易。在需要丰富的知识和实际能力的情况下表现最佳。"},
		"ENTJ": {Name: "将军型", Narrative: "直率、果断, 各种活动的领导者。发展和完成完整的体系去解决机构的问题。长于需要论据和机智的谈吐的任何事情, 如公开演讲之类。往往很有学识并喜好增加其知识。"},
		"ENTP": {Name: "发明家", Narrative: "敏捷、有发明天才,长于许多事情。有鼓励性的伙伴、机警、直言。可能出于逗趣而争论问题的任何一个方面。在解决新的、挑战性的问题方面富于机智, 但可能忽视日常工作。易把兴趣从一点转移到另一点。能够轻而易举地为他们的要求找到合乎逻辑的理由。"},
		"ENFJ": {Name: "教育家", Narrative: "敏感、负责任。真正地关心他人的所想所愿。处理事情时尽量适当考虑别人的感情。能提出建议或轻松而机智地领导小组讨论。喜社交、受欢迎、有同情心。对表扬和批评敏感。喜欢给人以方便并使人们发挥其潜力。"},
		"ENFP": {Name: "记者型", Narrative: "极为热心、极富朝气、机敏、富于想象力。几乎能够做他们感兴趣的任何事情。对任何困难都能迅速给出解决办法并随时准备去帮助任何一个遇到难题的人。常常依据他们自己的能力去即席成事, 而不是事先准备。经常能对他们想做的任何事情找到令人信服的理由。"},
		"ISTJ": {Name: "公务型", Narrative: "严肃、少言、依靠精力集中和有始有终。注重实践、有秩序、实事求是、有逻辑、现实、值得信赖。设法组织好每样事情。负责任、 他们自己决定该做什么并不愿反对和干扰、坚定不移地去完成它。"},
		"ISTP": {Name: "冒险家", Narrative: "冷静的旁观者 - 少言、自制、以独有的好奇心和 出人意料的有创意的幽默观察和分析生活。往往对起因和结果感兴趣 ,也对机械的事物怎么及为什么奏效及用逻辑原理组织事实倾注兴趣。擅长抓住实际问题的核心并寻求解决办法。"},
		"ISFJ": {Name: "照顾型", Narrative: "少言、友善、负责任又认真。尽心地工作以尽职责。可以使任何项目和群体更加稳定。周到、刻苦、准确。他们的兴趣通常不是技术性的。能对必要的细节有耐心、忠贞、体谅人、有洞察力、关心别人的想法。"},
		"ISFP": {Name: "艺术家", Narrative: "羞怯、不事声张的友善、敏感、和谐、谦虚看待自己的能力。回避争论,不将自己的观点和价值观强加于人。一般说,无意于做领导工作,但常常是忠实的追随者,因为他们享受眼前的乐趣,所以事情做完经常松懈而不愿让过度的紧迫和费事来破坏这种享受。"},
		"INTJ": {Name: "专家型", Narrative: "具有创造性的思想并大力推动他们自己的主意和目标。目光远大、对外部事件能迅速找到有意义的模式。在吸引他们的领域,他们有很好的能力去组织工作并将其进行到底。不轻信、具批判性、独立性、有决心, 对能力和行动有高的标准。"},
		"INTP": {Name: "学者型", Narrative: "沉默寡言。特别喜欢理论上或科学方面的追求。喜爱用逻辑和分析解决问题。主要有兴趣于出主意, 不大喜欢聚会和闲聊天。倾向于有明确范围的爱好。谋求他们的某些特别的爱好能得到运用和有用的那些职业。"},
		"INFJ": {Name: "作家型", Narrative: "依靠坚毅不拔取得成功,富创造力 , 希望做需要做和想要做的事情。全力投入自己的工作。沈静地坚强、责任心强、关心他人。因其坚定的原则而受尊重。由于他们在如何最好为公共利益服务等方面的明晰的洞察力,别人可能会尊重和追随他们。"},
		"INFP": {Name: "哲学家", Narrative: "沈稳的观察者、理想主意、忠实、看重外在的生活和内在的价值的一致。有求知欲, 能迅速发出各种可能性, 常常起到促进实行一些主张的作用。只要某种价值观不受到威胁，他们都善应变、灵活和接受。愿意谅解别人和了解充分发挥人的潜力的方法。"},
	},
})
