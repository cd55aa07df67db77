package i18n

import "github.com/fitfocus/fitfocus/internal/model"

// Strings is the full UI translation set for one language.
type Strings struct {
	LetsStart         string
	EnterInitial      string
	EnterTarget       string
	EnterTargetDays   string
	BeginPlan         string
	TodayWeight       string
	RecordToday       string
	CurrentWeight     string
	Lost              string
	Remaining         string
	ChatbotGreeting   string
	TypeHere          string
	SwitchLang        string
	Continue          string
	WeightPlaceholder string
	Confirm           string
	Day               string
	GoalReached       string
	Plateau           string
	MentorTip         string
	Customize         string
	SelectFont        string
	ThemeColor        string
	Reset             string
	CustomGradient    string
	Apply             string
	FontSize          string
	FontColor         string
	PressEnter        string
	DataSynced        string
	ChangePersona     string
}

var english = Strings{
	LetsStart:         "Let's Start!",
	EnterInitial:      "Initial weight (kg):",
	EnterTarget:       "Target weight (kg):",
	EnterTargetDays:   "Target days:",
	BeginPlan:         "A new beginning awaits.",
	TodayWeight:       "Today's check-in",
	RecordToday:       "What's the number today?",
	CurrentWeight:     "Current",
	Lost:              "Lost",
	Remaining:         "Target",
	ChatbotGreeting:   "Gentle words for a focused heart.",
	TypeHere:          "Whisper your thoughts...",
	SwitchLang:        "ENG",
	Continue:          "Continue",
	WeightPlaceholder: "0.0",
	Confirm:           "Confirm",
	Day:               "Day",
	GoalReached:       "Goal Reached!",
	Plateau:           "Stalling is part of winning. Hold fast.",
	MentorTip:         "Mentor",
	Customize:         "Personalize",
	SelectFont:        "Typography",
	ThemeColor:        "Aura Colors",
	Reset:             "Default",
	CustomGradient:    "Create Your Own",
	Apply:             "Apply",
	FontSize:          "Text Size",
	FontColor:         "Text Color",
	PressEnter:        "Press Enter to Send",
	DataSynced:        "Local Data Synced",
	ChangePersona:     "Switch Guide",
}

var chinese = Strings{
	LetsStart:         "起程",
	EnterInitial:      "初始体重 (kg)：",
	EnterTarget:       "目标体重 (kg)：",
	EnterTargetDays:   "计划天数：",
	BeginPlan:         "万物更新，由此开始。",
	TodayWeight:       "今日记录",
	RecordToday:       "今日的数字是？",
	CurrentWeight:     "当前",
	Lost:              "已减",
	Remaining:         "目标",
	ChatbotGreeting:   "静心微语，专注当下。",
	TypeHere:          "倾诉你的想法...",
	SwitchLang:        "中文",
	Continue:          "继续",
	WeightPlaceholder: "0.0",
	Confirm:           "确认",
	Day:               "第",
	GoalReached:       "目标达成！",
	Plateau:           "静止亦是成长的一部分。",
	MentorTip:         "哲思教练",
	Customize:         "个性化设置",
	SelectFont:        "字体选择",
	ThemeColor:        "灵动色调",
	Reset:             "重置",
	CustomGradient:    "自定义渐变",
	Apply:             "应用",
	FontSize:          "字体大小",
	FontColor:         "字体颜色",
	PressEnter:        "回车发送消息",
	DataSynced:        "数据已同步至本地",
	ChangePersona:     "更换向导",
}

// T returns the translation set for the language, defaulting to Chinese
// (the application default language).
func T(lang model.Language) Strings {
	if lang == model.LanguageEN {
		return english
	}
	return chinese
}

// PersonaCard is the picker copy for one coach persona.
type PersonaCard struct {
	Persona model.Persona
	Title             string
	Desc              string
	Icon              string
}

// PersonaCards lists the selectable coach personas in picker order.
func PersonaCards(lang model.Language) []PersonaCard {
	if lang == model.LanguageEN {
		return []PersonaCard{
			{Persona: model.PersonaStrict, Title: "Strict Coach", Desc: "Firm, decisive, goal-driven.", Icon: "⚡"},
			{Persona: model.PersonaPoetic, Title: "Poetic Mentor", Desc: "Zen, poetic, insight journey.", Icon: "🌿"},
			{Persona: model.PersonaGentle, Title: "Gentle Partner", Desc: "Care, support, warm companion.", Icon: "☁️"},
		}
	}
	return []PersonaCard{
		{Persona: model.PersonaStrict, Title: "严厉教练", Desc: "坚定、果断、目标导向。", Icon: "⚡"},
		{Persona: model.PersonaPoetic, Title: "哲思导师", Desc: "文艺、诗意、感悟旅程。", Icon: "🌿"},
		{Persona: model.PersonaGentle, Title: "温柔伙伴", Desc: "关怀、鼓励、暖心相伴。", Icon: "☁️"},
	}
}
