package lexicon

// table is the morpheme dictionary of the language.
var table = []Entry{
	{"d^", "命令"},
	{"c^", "疑問"},
	{"wa*t", "何の"},
	{"d:i", "これ"},
	{"da*t", "それ"},
	{"mi", "私"},
	{"yu", "あなた"},
	{"ze", "彼"},
	{"taim", "時間"},
	{"deit", "日"},
	{"land", "場所"},
	{"est", "説明"},
	{"ed", "過去"},
	{"il", "未来"},
	{"av", "現在"},
	{"i-t", "食べる"},
	{"spi-k", "言う"},
	{"a:ud", "聞く"},
	{"lang", "言葉"},
	{"lu*k", "見る"},
	{"sve-t", "光"},
	{"da-k", "闇"},
	{"hom", "人間"},
	{"a-l", "集合"},
	{"komon", "共通"},
	{"can", "可能"},
	{"izm", "主義"},
	{"ist", "もの"},
	{"ide", "概念"},
	{"liber", "自由"},
	{"re-zun", "理性"},
	{"soci", "社会"},
	{"stran", "地域"},
	{"naci", "国家"},
	{"blast", "権力"},
	{"anark", "無政府"},
	{"ru-n", "走る"},
	{"k^alk", "計算"},
	{"saiens", "学問"},
	{"memor", "記憶"},
	{"nam", "数"},
	{"waz", "技術"},
	{"wa-k", "仕事"},
	{"a*d", "足し"},
	{"pul", "引き"},
	{"kak", "掛け"},
	{"div", "割り"},
	{"act", "する"},
	{"mov", "動き"},
	{"pros", "処理"},
	{"o-da", "命令"},
	{"plei", "遊び"},
	{"raik", "みたい"},
	{"lit", "性質"},
	{"kain", "種類"},
	{"aiz", "変化"},
	{"scir", "させる"},
	{"ne", "否定"},
	{"anti", "反対"},
	{"yes", "肯定"},
	{"un", "無い"},
	{"on", "有る"},
	{"in", "中に"},
	{"at", "には"},
	{"ter", "越え"},
	{"de-t", "データ"},
	{"eny", "何か"},
	{"meny", "複数"},
	{"k^om", "興味"},
	{"lav", "愛"},
	{"feiv", "好"},
	{"ho-p", "希望"},
	{"teik", "取得"},
	{"los", "失う"},
	{"hav", "持つ"},
	{"o-st", "最も"},
	{"e-r", "より"},
	{"und", "かつ"},
	{"lor", "また"},
	{"t:u-", "過ぎる"},
	{"pawa", "力"},
	{"brein", "脳"},
	{"ful", "強い"},
	{"les", "弱い"},
	{"prev", "前の"},
	{"forv", "次の"},
	{"gu*d", "良い"},
	{"ba*d", "悪い"},
	{"lo*t", "多い"},
	{"bi*t", "少ない"},
	{"bes^", "全て"},
	{"mond", "世界"},
	{"batl", "戦い"},
	{"wa-r", "争う"},
	{"final", "最後"},
	{"wiz", "共に"},
	{"stand", "立つ"},
	{"deci", "決定"},
	{"frend", "友達"},
	{"rela", "関係"},
	{"emo-t", "心"},
	{"bunt", "同盟"},
	{"join", "参加"},
	// roots of the evaluator's built-in verbs
	{"car", "文字"},
	{"if", "もし"},
	{"ge*t", "得る"},
}
