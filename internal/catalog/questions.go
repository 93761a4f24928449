package catalog

import "dancenavi/internal/model"

// Q2 option labels double as the course-matching key: Course.q2AnswerTags
// holds these exact strings. Edit with care.
var defaultQuestions = []model.Question{
	{
		ID:    model.QuestionIDArea,
		Key:   model.QuestionKeyArea,
		Title: "どのスタジオに通いたいですか？",
		Options: []model.Option{
			{ID: "q1_shibuya", Label: "渋谷校", Tag: "shibuya"},
			{ID: "q1_shinjuku", Label: "新宿校", Tag: "shinjuku"},
			{ID: "q1_yokohama", Label: "横浜校", Tag: "yokohama"},
			{ID: "q1_online", Label: "オンライン校", Tag: "online", IsOnline: true},
		},
	},
	{
		ID:          model.QuestionIDLevel,
		Key:         model.QuestionKeyLevel,
		Title:       "ダンスのご経験はありますか？",
		Description: "一番近いものを選んでください",
		Options: []model.Option{
			{ID: "q2_zero", Label: "ダンスは全くの未経験", Tag: "Lv0_超入門"},
			{ID: "q2_rhythm", Label: "リズム取りから学びたい", Tag: "Lv1_入門"},
			{ID: "q2_basic", Label: "基礎は一通りできる", Tag: "Lv2_初級"},
			{ID: "q2_choreo", Label: "振付を踊り込みたい", Tag: "Lv3_初中級"},
			{ID: "q2_exp", Label: "経験者としてレベルアップしたい", Tag: "Lv4_中上級"},
		},
	},
	{
		ID:    model.QuestionIDAge,
		Key:   model.QuestionKeyAge,
		Title: "年代を教えてください",
		Options: []model.Option{
			{ID: "q3_kids", Label: "小中学生", Tag: "Age_Kids"},
			{ID: "q3_student", Label: "高校生・大学生", Tag: "Age_Student"},
			{ID: "q3_work", Label: "社会人", Tag: "Age_Adult_Work"},
			{ID: "q3_senior", Label: "50代以上", Tag: "Age_Senior"},
		},
	},
	{
		ID:    model.QuestionIDGenre,
		Key:   model.QuestionKeyGenre,
		Title: "踊ってみたいジャンルはありますか？",
		Options: []model.Option{
			{ID: "q4_kpop", Label: "K-POP", Tag: "Genre_KPOP"},
			{ID: "q4_hiphop", Label: "HIPHOP", Tag: "Genre_HIPHOP"},
			{ID: "q4_jazz", Label: "JAZZ", Tag: "Genre_JAZZ"},
			{ID: "q4_themepark", Label: "テーマパーク", Tag: "Genre_ThemePark"},
			{ID: "q4_all", Label: "まだ決めていない", Tag: "Genre_All"},
		},
	},
	{
		ID:    model.QuestionIDTeacher,
		Key:   model.QuestionKeyTeacher,
		Title: "どんな先生に教わりたいですか？",
		Options: []model.Option{
			{ID: "q5_healing", Label: "優しく丁寧に教えてほしい", Tag: "Style_Healing"},
			{ID: "q5_strict", Label: "ビシビシ鍛えてほしい", Tag: "Style_Strict"},
			{ID: "q5_energetic", Label: "ノリ良く楽しいレッスンがいい", Tag: "Style_Energetic"},
			{ID: "q5_logical", Label: "理論的に細かく教えてほしい", Tag: "Style_Logical"},
		},
	},
	{
		ID:    model.QuestionIDConcern,
		Key:   model.QuestionKeyConcern,
		Title: "不安に思っていることはありますか？",
		Options: []model.Option{
			{ID: "q6_beginner", Label: "未経験でついていけるか不安", MessageKey: "Concern_Beginner"},
			{ID: "q6_age", Label: "年齢的に浮かないか心配", MessageKey: "Concern_Age"},
			{ID: "q6_body", Label: "体力・身体の硬さが心配", MessageKey: "Concern_Body"},
			{ID: "q6_continue", Label: "続けられるか分からない", MessageKey: "Concern_Continue"},
		},
	},
}

var concernMessages = map[string]string{
	"Concern_Beginner": "入会される方の約7割は未経験スタートです。超入門クラスでは鏡の前に立つところから丁寧にサポートします。",
	"Concern_Age":      "10代から60代まで幅広い年代の方が通われています。同年代の多いクラスをご案内しますのでご安心ください。",
	"Concern_Body":     "レッスンは毎回ストレッチから始まります。体力や柔軟性は通ううちに自然とついていきます。",
	"Concern_Continue": "月ごとにクラスやスケジュールを変更できます。まずは体験レッスンで雰囲気を確かめてみてください。",
}

const defaultConcernMessage = "どんな小さな不安でも体験時にスタッフへご相談ください。一人ひとりに合わせてご案内します。"
