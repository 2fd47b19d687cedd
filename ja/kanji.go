package ja

import "strings"

// kanjiVariants maps traditional (kyūjitai) and other variant forms to the
// modern standard (shinjitai) form. The table covers the variants that
// commonly appear in dictionary lookups; codepoints outside the table are
// left alone.
var kanjiVariants = map[rune]rune{
	'萬': '万', '與': '与', '兩': '両', '竝': '並', '乘': '乗',
	'亂': '乱', '豫': '予', '爭': '争', '亙': '亘', '佛': '仏',
	'假': '仮', '會': '会', '傳': '伝', '體': '体', '餘': '余',
	'倂': '併', '價': '価', '儉': '倹', '偉': '偉', '僞': '偽',
	'僧': '僧', '兒': '児', '黨': '党', '內': '内', '圓': '円',
	'寫': '写', '處': '処', '劍': '剣', '劑': '剤', '剩': '剰',
	'勞': '労', '勳': '勲', '勸': '勧', '區': '区', '醫': '医',
	'單': '単', '賣': '売', '變': '変', '夏': '夏', '夢': '夢',
	'奧': '奥', '奬': '奨', '孃': '嬢', '學': '学', '寶': '宝',
	'實': '実', '寬': '寛', '將': '将', '專': '専', '對': '対',
	'屆': '届', '屬': '属', '嶽': '岳', '峽': '峡', '巢': '巣',
	'廢': '廃', '廣': '広', '廳': '庁', '彈': '弾', '從': '従',
	'德': '徳', '徵': '徴', '應': '応', '戀': '恋', '惡': '悪',
	'惱': '悩', '愼': '慎', '戰': '戦', '戲': '戯', '戾': '戻',
	'拂': '払', '拔': '抜', '擇': '択', '擔': '担', '據': '拠',
	'擧': '挙', '搜': '捜', '插': '挿', '收': '収', '效': '効',
	'敎': '教', '數': '数', '斷': '断', '舊': '旧', '晝': '昼',
	'晚': '晩', '曉': '暁', '曆': '暦', '樂': '楽', '榮': '栄',
	'檢': '検', '樓': '楼', '樞': '枢', '樣': '様', '權': '権',
	'橫': '横', '櫻': '桜', '歐': '欧', '齒': '歯', '歷': '歴',
	'歸': '帰', '殘': '残', '殺': '殺', '毆': '殴', '氣': '気',
	'沒': '没', '澤': '沢', '濱': '浜', '淺': '浅', '淨': '浄',
	'溫': '温', '滯': '滞', '滿': '満', '濟': '済', '濕': '湿',
	'瀧': '滝', '灣': '湾', '燒': '焼', '爐': '炉', '點': '点',
	'爲': '為', '犬': '犬', '狀': '状', '獨': '独', '獻': '献',
	'畫': '画', '當': '当', '疊': '畳', '發': '発', '盡': '尽',
	'眞': '真', '硏': '研', '碎': '砕', '禮': '礼', '禪': '禅',
	'祿': '禄', '稱': '称', '稻': '稲', '穗': '穂', '穩': '穏',
	'竊': '窃', '粹': '粋', '絲': '糸', '經': '経', '綠': '緑',
	'總': '総', '縣': '県', '縱': '縦', '繼': '継', '續': '続',
	'纖': '繊', '缺': '欠', '罐': '缶', '聲': '声', '聽': '聴',
	'臟': '臓', '舍': '舎', '莊': '荘', '藏': '蔵', '藝': '芸',
	'藥': '薬', '蟲': '虫', '衞': '衛', '裝': '装', '覺': '覚',
	'觀': '観', '觸': '触', '譯': '訳', '證': '証', '讀': '読',
	'豐': '豊', '貳': '弐', '賤': '賎', '轉': '転', '輕': '軽',
	'辭': '辞', '邊': '辺', '釀': '醸', '釋': '釈', '鐵': '鉄',
	'鑛': '鉱', '關': '関', '陷': '陥', '險': '険', '隱': '隠',
	'雙': '双', '雜': '雑', '靈': '霊', '靜': '静', '顏': '顔',
	'顯': '顕', '飮': '飲', '驛': '駅', '驗': '験', '髮': '髪',
	'鬪': '闘', '鹽': '塩', '麥': '麦', '默': '黙', '龍': '竜',
	'龜': '亀',
}

// StandardizeKanjiVariants replaces traditional kanji variants with their
// modern standard form (萬 → 万).
func StandardizeKanjiVariants(text string) string {
	return strings.Map(func(r rune) rune {
		if std, ok := kanjiVariants[r]; ok {
			return std
		}
		return r
	}, text)
}
