// Package seed holds the demo records the in-memory stores start with.
// IDs are fixed so references between topics, categories and evidence
// stay stable across restarts.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

var (
	CategoryQuranID    = uuid.MustParse("9b1a6a10-2f6e-4c58-8f2a-0c6f1a2b3c4d")
	CategoryProphetID  = uuid.MustParse("1e2d3c4b-5a69-4788-9796-a5b4c3d2e1f0")
	CategoryWomenID    = uuid.MustParse("7f8e9d0c-1b2a-4394-8485-565748392a1b")
	CategoryViolenceID = uuid.MustParse("3c4d5e6f-7a8b-49c0-9d1e-2f3a4b5c6d7e")
	CategoryScienceID  = uuid.MustParse("5d6e7f80-91a2-43b4-85c6-d7e8f90a1b2c")
	CategoryHistoryID  = uuid.MustParse("0a1b2c3d-4e5f-4607-8819-2a3b4c5d6e7f")

	TopicWomenRightsID  = uuid.MustParse("a1b2c3d4-e5f6-4708-8192-a3b4c5d6e7f8")
	TopicSwordVerseID   = uuid.MustParse("b2c3d4e5-f607-4819-92a3-b4c5d6e7f809")
	TopicPreservationID = uuid.MustParse("c3d4e5f6-0718-4920-a3b4-c5d6e7f8091a")
	TopicAishaID        = uuid.MustParse("d4e5f607-1829-4031-b4c5-d6e7f8091a2b")
	TopicEmbryologyID   = uuid.MustParse("e5f60718-293a-4142-c5d6-e7f8091a2b3c")
	TopicSlaveryID      = uuid.MustParse("f6071829-3a4b-4253-d6e7-f8091a2b3c4d")
	TopicMoonSplitID    = uuid.MustParse("07182930-4b5c-4364-e7f8-091a2b3c4d5e")
	TopicApostasyID     = uuid.MustParse("18293a41-5c6d-4475-f809-1a2b3c4d5e6f")

	UserAdminID    = uuid.MustParse("11111111-aaaa-4bbb-8ccc-000000000001")
	UserScholar1ID = uuid.MustParse("11111111-aaaa-4bbb-8ccc-000000000002")
	UserScholar2ID = uuid.MustParse("11111111-aaaa-4bbb-8ccc-000000000003")
	UserAliID      = uuid.MustParse("11111111-aaaa-4bbb-8ccc-000000000004")
	UserFatimahID  = uuid.MustParse("11111111-aaaa-4bbb-8ccc-000000000005")
	UserAhmadID    = uuid.MustParse("11111111-aaaa-4bbb-8ccc-000000000006")
)

func ptr[T any](v T) *T { return &v }

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("seed: bad date " + s)
	}
	return t
}

// Users returns the demo accounts: one admin, two scholars, three users.
func Users() []domain.User {
	return []domain.User{
		{
			ID: UserAdminID, Email: "admin@haqqvault.com", Name: "ผู้ดูแลระบบ",
			Role: domain.RoleAdmin, IsVerified: true,
			Bio:       ptr("ผู้ดูแลระบบ Haqq Vault"),
			CreatedAt: date("2024-01-01T00:00:00Z"), UpdatedAt: date("2024-01-01T00:00:00Z"),
		},
		{
			ID: UserScholar1ID, Email: "scholar@haqqvault.com", Name: "ดร.อับดุลเลาะห์",
			NameArabic: ptr("عبد الله"),
			Role:       domain.RoleScholar, IsVerified: true,
			Bio:       ptr("นักวิชาการอิสลามศึกษา ผู้เชี่ยวชาญด้านหะดีษ"),
			CreatedAt: date("2024-01-15T00:00:00Z"), UpdatedAt: date("2024-01-15T00:00:00Z"),
		},
		{
			ID: UserScholar2ID, Email: "scholar2@haqqvault.com", Name: "อุสตาซ มูฮัมหมัด",
			NameArabic: ptr("محمد"),
			Role:       domain.RoleScholar, IsVerified: true,
			Bio:       ptr("นักวิชาการด้านกฎหมายอิสลาม"),
			CreatedAt: date("2024-02-01T00:00:00Z"), UpdatedAt: date("2024-02-01T00:00:00Z"),
		},
		{
			ID: UserAliID, Email: "user@example.com", Name: "อาลี ผู้ใช้ทั่วไป",
			Role: domain.RoleUser, IsVerified: true,
			Bio:       ptr("สมาชิกผู้สนใจศึกษาความรู้อิสลาม"),
			CreatedAt: date("2024-03-01T00:00:00Z"), UpdatedAt: date("2024-03-01T00:00:00Z"),
		},
		{
			ID: UserFatimahID, Email: "fatimah@example.com", Name: "ฟาติมะห์",
			Role: domain.RoleUser, IsVerified: false,
			Bio:       ptr("นักศึกษา"),
			CreatedAt: date("2024-03-10T00:00:00Z"), UpdatedAt: date("2024-03-10T00:00:00Z"),
		},
		{
			ID: UserAhmadID, Email: "ahmad@example.com", Name: "อะหมัด",
			Role: domain.RoleUser, IsVerified: true,
			CreatedAt: date("2024-04-05T00:00:00Z"), UpdatedAt: date("2024-04-05T00:00:00Z"),
		},
	}
}

// Passwords returns the demo plaintext passwords keyed by email. They are
// bcrypt-hashed during store construction; the plaintext never reaches a
// repository.
func Passwords() map[string]string {
	return map[string]string{
		"admin@haqqvault.com":    "admin123",
		"scholar@haqqvault.com":  "scholar123",
		"scholar2@haqqvault.com": "scholar123",
		"user@example.com":       "user123",
		"fatimah@example.com":    "user123",
		"ahmad@example.com":      "user123",
	}
}

// Categories returns the taxonomy nodes in display order.
func Categories() []domain.Category {
	return []domain.Category{
		{
			ID: CategoryQuranID, Slug: "quran", Name: "อัลกุรอาน",
			NameArabic:  ptr("القرآن"),
			Description: "ข้อสงสัยเกี่ยวกับความถูกต้องและการรักษาอัลกุรอาน",
			Icon:        "📖", Color: "#0e7490", TopicCount: 2, Order: 1, IsActive: true,
			CreatedAt: date("2024-01-01T00:00:00Z"), UpdatedAt: date("2024-01-01T00:00:00Z"),
		},
		{
			ID: CategoryProphetID, Slug: "prophet", Name: "ท่านนบีมูฮัมหมัด",
			NameArabic:  ptr("النبي محمد"),
			Description: "ข้อกล่าวหาเกี่ยวกับชีวประวัติของท่านนบี ﷺ",
			Icon:        "🕌", Color: "#15803d", TopicCount: 1, Order: 2, IsActive: true,
			CreatedAt: date("2024-01-01T00:00:00Z"), UpdatedAt: date("2024-01-01T00:00:00Z"),
		},
		{
			ID: CategoryWomenID, Slug: "women", Name: "สตรีในอิสลาม",
			NameArabic:  ptr("المرأة في الإسلام"),
			Description: "ประเด็นสิทธิสตรีและครอบครัว",
			Icon:        "🧕", Color: "#a21caf", TopicCount: 1, Order: 3, IsActive: true,
			CreatedAt: date("2024-01-01T00:00:00Z"), UpdatedAt: date("2024-01-01T00:00:00Z"),
		},
		{
			ID: CategoryViolenceID, Slug: "violence", Name: "ความรุนแรงและญิฮาด",
			NameArabic:  ptr("الجهاد"),
			Description: "ข้อกล่าวหาเรื่องความรุนแรง สงคราม และการบังคับศาสนา",
			Icon:        "⚖️", Color: "#b91c1c", TopicCount: 2, Order: 4, IsActive: true,
			CreatedAt: date("2024-01-01T00:00:00Z"), UpdatedAt: date("2024-01-01T00:00:00Z"),
		},
		{
			ID: CategoryScienceID, Slug: "science", Name: "วิทยาศาสตร์",
			NameArabic:  ptr("العلم"),
			Description: "ข้อสงสัยว่าอัลกุรอานขัดแย้งกับวิทยาศาสตร์",
			Icon:        "🔬", Color: "#1d4ed8", TopicCount: 2, Order: 5, IsActive: true,
			CreatedAt: date("2024-01-01T00:00:00Z"), UpdatedAt: date("2024-01-01T00:00:00Z"),
		},
		{
			ID: CategoryHistoryID, Slug: "history", Name: "ประวัติศาสตร์",
			NameArabic:  ptr("التاريخ"),
			Description: "ประเด็นทางประวัติศาสตร์อิสลาม",
			Icon:        "🏛️", Color: "#92400e", TopicCount: 0, Order: 6, IsActive: false,
			CreatedAt: date("2024-01-01T00:00:00Z"), UpdatedAt: date("2024-01-01T00:00:00Z"),
		},
	}
}

// Topics returns the seed accusation/answer records. Newest first, the
// order the site renders before any explicit sort.
func Topics() []domain.Topic {
	return []domain.Topic{
		{
			ID: TopicApostasyID, Slug: "apostasy-freedom-of-belief",
			Title:       "อิสลามบังคับให้นับถือศาสนาจริงหรือ",
			Claim:       "มีข้อกล่าวหาว่าอิสลามไม่ให้เสรีภาพในการนับถือศาสนา",
			ShortAnswer: "อัลกุรอานยืนยันชัดเจนว่าไม่มีการบังคับในศาสนา (2:256)",
			DetailedExplanation: "หลักการพื้นฐานของอิสลามคือการศรัทธาต้องมาจากความสมัครใจ " +
				"อายะฮ์ ลาอิกรอฮะ ฟิดดีน ถูกประทานลงมาในบริบทของชาวมะดีนะฮ์ที่ต้องการบังคับบุตรให้เข้ารับอิสลาม " +
				"และนักวิชาการส่วนใหญ่ถือว่าหลักการนี้ไม่ถูกยกเลิก",
			CategoryID:    CategoryViolenceID,
			SeverityLevel: domain.SeverityIntermediate,
			Tags:          []string{"เสรีภาพ", "การบังคับศาสนา", "อายะฮ์ 2:256"},
			Status:        domain.TopicStatusPending,
			IsVerified:    false, ViewCount: 87,
			AuthorID:  ptr(UserScholar2ID),
			CreatedAt: date("2024-06-20T09:00:00Z"), UpdatedAt: date("2024-06-20T09:00:00Z"),
		},
		{
			ID: TopicMoonSplitID, Slug: "splitting-of-the-moon",
			Title:       "การแยกของดวงจันทร์ขัดกับวิทยาศาสตร์หรือไม่",
			TitleArabic: ptr("انشقاق القمر"),
			Claim:       "ผู้วิจารณ์อ้างว่าปาฏิหาริย์การแยกดวงจันทร์เป็นไปไม่ได้ทางฟิสิกส์",
			ShortAnswer: "ปาฏิหาริย์โดยนิยามคือเหตุการณ์เหนือกฎธรรมชาติ ไม่ใช่ข้ออ้างทางวิทยาศาสตร์",
			DetailedExplanation: "เหตุการณ์นี้ถูกรายงานในหะดีษเศาะฮีหฺหลายสาย " +
				"ประเด็นสำคัญคือกรอบญาณวิทยา: ศาสนาไม่ได้อ้างว่าปาฏิหาริย์เกิดตามกฎฟิสิกส์ปกติ",
			CategoryID:    CategoryScienceID,
			SeverityLevel: domain.SeverityAdvanced,
			Tags:          []string{"ปาฏิหาริย์", "ดวงจันทร์", "วิทยาศาสตร์"},
			Status:        domain.TopicStatusDraft,
			IsVerified:    false, ViewCount: 15,
			AuthorID:  ptr(UserScholar1ID),
			CreatedAt: date("2024-06-12T14:30:00Z"), UpdatedAt: date("2024-06-12T14:30:00Z"),
		},
		{
			ID: TopicSlaveryID, Slug: "islam-and-slavery",
			Title:       "อิสลามสนับสนุนระบบทาสจริงหรือ",
			Claim:       "มีผู้อ้างว่าอิสลามรับรองและส่งเสริมการมีทาส",
			ShortAnswer: "อิสลามจำกัดแหล่งที่มาของทาส เปิดทางปลดปล่อยอย่างกว้าง และทำให้การปล่อยทาสเป็นอิบาดะฮ์",
			DetailedExplanation: "อิสลามเข้ามาในสังคมที่ระบบทาสฝังรากลึก " +
				"แนวทางของชะรีอะฮ์คือการปิดแหล่งที่มาเดิมเกือบทั้งหมดและทำให้การปลดปล่อยเป็นการไถ่บาปหลัก " +
				"เช่น กัฟฟาเราะฮ์ของการผิดคำสาบานและการละศีลอด",
			CategoryID:    CategoryHistoryID,
			SeverityLevel: domain.SeverityAdvanced,
			Tags:          []string{"ทาส", "ประวัติศาสตร์", "ชะรีอะฮ์"},
			Status:        domain.TopicStatusApproved,
			IsVerified:    false, ViewCount: 203,
			AuthorID: ptr(UserScholar2ID), ReviewerID: ptr(UserScholar1ID),
			CreatedAt: date("2024-05-28T10:00:00Z"), UpdatedAt: date("2024-06-02T08:00:00Z"),
		},
		{
			ID: TopicEmbryologyID, Slug: "quran-embryology",
			Title:       "อัลกุรอานกับวิทยาเอ็มบริโอ",
			TitleArabic: ptr("علم الأجنة في القرآن"),
			Claim:       "มีข้อกล่าวหาว่าคำอธิบายพัฒนาการทารกในครรภ์ในอัลกุรอานผิดพลาด",
			ShortAnswer: "คำศัพท์อาหรับในอายะฮ์ครอบคลุมความหมายที่สอดคล้องกับขั้นพัฒนาการจริง",
			DetailedExplanation: "คำว่า นุฏฟะฮ์ อะละเกาะฮ์ และ มุฎเฆาะฮ์ " +
				"เป็นคำพรรณนาเชิงสัณฐานที่ผู้ฟังในศตวรรษที่ 7 เข้าใจได้ และไม่ขัดกับรายละเอียดทางวิทยาศาสตร์สมัยใหม่",
			CategoryID:    CategoryScienceID,
			SeverityLevel: domain.SeverityIntermediate,
			Tags:          []string{"เอ็มบริโอ", "วิทยาศาสตร์", "อายะฮ์ 23:14"},
			Status:        domain.TopicStatusPublished,
			IsVerified:    true, ViewCount: 540,
			AuthorID: ptr(UserScholar1ID), ReviewerID: ptr(UserScholar2ID),
			PublishedAt: ptr(date("2024-05-15T07:00:00Z")),
			CreatedAt:   date("2024-05-01T09:00:00Z"), UpdatedAt: date("2024-05-15T07:00:00Z"),
		},
		{
			ID: TopicAishaID, Slug: "aisha-marriage-age",
			Title:       "การแต่งงานของท่านหญิงอาอิชะฮ์",
			TitleArabic: ptr("زواج عائشة"),
			Claim:       "ข้อกล่าวหาว่าการแต่งงานของท่านนบีกับท่านหญิงอาอิชะฮ์ผิดศีลธรรม",
			ShortAnswer: "ต้องเข้าใจบริบททางประวัติศาสตร์และบรรทัดฐานของยุคสมัย ซึ่งไม่มีผู้ร่วมสมัยคนใดคัดค้าน",
			DetailedExplanation: "การแต่งงานในวัยเยาว์เป็นบรรทัดฐานสากลของสังคมก่อนสมัยใหม่ทุกอารยธรรม " +
				"แม้แต่ศัตรูการเมืองของท่านนบีในเวลานั้นก็ไม่เคยหยิบยกประเด็นนี้เป็นข้อตำหนิ",
			CategoryID:    CategoryProphetID,
			SeverityLevel: domain.SeverityAdvanced,
			Tags:          []string{"อาอิชะฮ์", "ชีวประวัติ", "บริบททางประวัติศาสตร์"},
			Status:        domain.TopicStatusPublished,
			IsVerified:    true, ViewCount: 1120,
			AuthorID: ptr(UserScholar1ID), ReviewerID: ptr(UserScholar2ID),
			PublishedAt: ptr(date("2024-04-20T07:00:00Z")),
			CreatedAt:   date("2024-04-02T09:00:00Z"), UpdatedAt: date("2024-04-20T07:00:00Z"),
		},
		{
			ID: TopicPreservationID, Slug: "quran-preservation",
			Title:       "อัลกุรอานถูกเปลี่ยนแปลงจริงหรือ",
			TitleArabic: ptr("حفظ القرآن"),
			Claim:       "มีข้อกล่าวหาว่าอัลกุรอานถูกแก้ไขและมีหลายฉบับที่ขัดแย้งกัน",
			ShortAnswer: "ต้นฉบับโบราณ เช่น เบอร์มิงแฮมและศอนอาอ์ ยืนยันความคงเดิมของตัวบท",
			DetailedExplanation: "การสืบทอดอัลกุรอานใช้ระบบท่องจำแบบมุตะวาติรควบคู่กับบันทึกลายลักษณ์ " +
				"ต้นฉบับยุคแรกที่ตรวจอายุด้วยคาร์บอนสอดคล้องกับตัวบทปัจจุบันแทบทุกตัวอักษร " +
				"ส่วนความต่างของกิรออาตเป็นรูปแบบการอ่านที่ถูกถ่ายทอดพร้อมสายรายงาน",
			CategoryID:    CategoryQuranID,
			SeverityLevel: domain.SeverityBasic,
			Tags:          []string{"อัลกุรอาน", "ต้นฉบับ", "กิรออาต"},
			Status:        domain.TopicStatusPublished,
			IsVerified:    true, ViewCount: 2310,
			AuthorID: ptr(UserScholar1ID), ReviewerID: ptr(UserScholar2ID),
			PublishedAt: ptr(date("2024-03-10T07:00:00Z")),
			CreatedAt:   date("2024-02-20T09:00:00Z"), UpdatedAt: date("2024-03-10T07:00:00Z"),
		},
		{
			ID: TopicSwordVerseID, Slug: "sword-verse-context",
			Title:       "อายะฮ์ดาบ สั่งฆ่าผู้ปฏิเสธจริงหรือ",
			TitleArabic: ptr("آية السيف"),
			Claim:       "ผู้วิจารณ์ยกอายะฮ์ 9:5 ว่าเป็นคำสั่งถาวรให้ทำร้ายผู้ไม่ใช่มุสลิม",
			ShortAnswer: "อายะฮ์นี้ว่าด้วยกลุ่มมุชริกีนที่ละเมิดสนธิสัญญา ไม่ใช่คำสั่งทั่วไป",
			DetailedExplanation: "การอ่านอายะฮ์ 9:5 ต้องอ่านพร้อมอายะฮ์ 9:4 และ 9:6 " +
				"ซึ่งยกเว้นผู้รักษาสัญญาและสั่งให้คุ้มครองผู้ขอความปลอดภัย " +
				"บริบทคือสงครามกับเผ่าที่ละเมิดสนธิสัญญาฮุดัยบียะฮ์",
			CategoryID:    CategoryViolenceID,
			SeverityLevel: domain.SeverityBasic,
			Tags:          []string{"ญิฮาด", "อายะฮ์ 9:5", "บริบท"},
			Status:        domain.TopicStatusPublished,
			IsVerified:    true, ViewCount: 1845,
			AuthorID: ptr(UserScholar2ID), ReviewerID: ptr(UserScholar1ID),
			PublishedAt: ptr(date("2024-02-15T07:00:00Z")),
			CreatedAt:   date("2024-02-01T09:00:00Z"), UpdatedAt: date("2024-02-15T07:00:00Z"),
		},
		{
			ID: TopicWomenRightsID, Slug: "women-inheritance-rights",
			Title:       "อิสลามกดขี่สิทธิสตรีเรื่องมรดกหรือไม่",
			Claim:       "ข้อกล่าวหาว่าส่วนแบ่งมรดกครึ่งหนึ่งของชายแสดงว่าสตรีด้อยกว่า",
			ShortAnswer: "ระบบมรดกอิสลามผูกกับภาระทางการเงิน ชายต้องรับผิดชอบค่าเลี้ยงดูทั้งครอบครัว",
			DetailedExplanation: "ในหลายกรณีสตรีได้รับมากกว่าหรือเท่ากับชาย " +
				"นักกฎหมายนับได้มากกว่าสามสิบกรณีที่สตรีได้ส่วนแบ่งไม่น้อยกว่าชาย " +
				"และทรัพย์ของสตรีเป็นสิทธิ์ขาดของนาง ไม่มีภาระค่าใช้จ่ายครอบครัว",
			CategoryID:    CategoryWomenID,
			SeverityLevel: domain.SeverityBasic,
			Tags:          []string{"สตรี", "มรดก", "ความยุติธรรม"},
			Status:        domain.TopicStatusPublished,
			IsVerified:    true, ViewCount: 980,
			AuthorID: ptr(UserScholar1ID), ReviewerID: ptr(UserScholar2ID),
			PublishedAt: ptr(date("2024-01-25T07:00:00Z")),
			CreatedAt:   date("2024-01-10T09:00:00Z"), UpdatedAt: date("2024-01-25T07:00:00Z"),
		},
	}
}

// Evidence returns the seed citations, grouped per topic.
func Evidence() []domain.Evidence {
	return []domain.Evidence{
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000001"), TopicID: TopicPreservationID,
			Type:  domain.EvidenceQuran,
			Title: "สัญญาการพิทักษ์รักษา", TitleArabic: ptr("إِنَّا نَحْنُ نَزَّلْنَا الذِّكْرَ"),
			Content:         "แท้จริงเราได้ประทานข้อตักเตือนลงมา และแท้จริงเราเป็นผู้พิทักษ์รักษามันอย่างแน่นอน",
			ContentArabic:   ptr("إِنَّا نَحْنُ نَزَّلْنَا الذِّكْرَ وَإِنَّا لَهُ لَحَافِظُونَ"),
			Source:          "ซูเราะฮ์อัลฮิจญ์รฺ 15:9",
			IsAuthenticated: true, Order: 1,
			CreatedAt: date("2024-02-20T09:00:00Z"), UpdatedAt: date("2024-02-20T09:00:00Z"),
		},
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000002"), TopicID: TopicPreservationID,
			Type:  domain.EvidenceHistorical,
			Title: "ต้นฉบับเบอร์มิงแฮม",
			Content: "ต้นฉบับอัลกุรอานของมหาวิทยาลัยเบอร์มิงแฮมตรวจอายุด้วยคาร์บอนได้ช่วง ค.ศ. 568–645 " +
				"ตัวบทตรงกับอัลกุรอานปัจจุบัน",
			Source:          "Birmingham Qur'an manuscript, University of Birmingham",
			SourceReference: ptr("https://www.birmingham.ac.uk/facilities/cadbury/birmingham-quran-mingana-collection"),
			IsAuthenticated: true, Order: 2,
			CreatedAt: date("2024-02-21T09:00:00Z"), UpdatedAt: date("2024-02-21T09:00:00Z"),
		},
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000003"), TopicID: TopicSwordVerseID,
			Type:  domain.EvidenceQuran,
			Title: "ข้อยกเว้นผู้รักษาสัญญา",
			Content: "นอกจากบรรดามุชริกีนที่พวกเจ้าทำสัญญาไว้ แล้วพวกเขามิได้บกพร่องต่อพวกเจ้าแต่อย่างใด " +
				"ก็จงให้ครบถ้วนแก่พวกเขาซึ่งสัญญาของพวกเขาจนถึงกำหนด",
			Source:          "ซูเราะฮ์อัตเตาบะฮ์ 9:4",
			IsAuthenticated: true, Order: 1,
			CreatedAt: date("2024-02-01T09:00:00Z"), UpdatedAt: date("2024-02-01T09:00:00Z"),
		},
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000004"), TopicID: TopicSwordVerseID,
			Type:            domain.EvidenceScholarly,
			Title:           "ทัศนะอิบนุตัยมียะฮ์เรื่องเหตุแห่งการรบ",
			Content:         "การรบในอิสลามผูกกับการรุกราน มิใช่ความต่างทางศาสนา ผู้ไม่รบย่อมไม่ถูกรบ",
			Source:          "อิบนุตัยมียะฮ์, อัสสิยาสะฮ์ อัชชัรอียะฮ์",
			IsAuthenticated: true, Order: 2,
			CreatedAt: date("2024-02-02T09:00:00Z"), UpdatedAt: date("2024-02-02T09:00:00Z"),
		},
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000005"), TopicID: TopicWomenRightsID,
			Type:            domain.EvidenceQuran,
			Title:           "หลักภาระเลี้ยงดูของฝ่ายชาย",
			Content:         "บรรดาชายเป็นผู้ดูแลค้ำจุนสตรี เนื่องด้วยสิ่งที่พวกเขาได้จ่ายไปจากทรัพย์ของพวกเขา",
			Source:          "ซูเราะฮ์อันนิซาอ์ 4:34",
			IsAuthenticated: true, Order: 1,
			CreatedAt: date("2024-01-10T09:00:00Z"), UpdatedAt: date("2024-01-10T09:00:00Z"),
		},
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000006"), TopicID: TopicAishaID,
			Type:            domain.EvidenceHadith,
			Title:           "รายงานเรื่องการแต่งงาน",
			Content:         "รายงานการแต่งงานปรากฏในเศาะฮีหฺบุคอรีด้วยสายรายงานที่ถูกต้อง",
			Source:          "เศาะฮีหฺอัลบุคอรี 5133",
			IsAuthenticated: true, Order: 1,
			CreatedAt: date("2024-04-02T09:00:00Z"), UpdatedAt: date("2024-04-02T09:00:00Z"),
		},
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000007"), TopicID: TopicEmbryologyID,
			Type:            domain.EvidenceQuran,
			Title:           "ขั้นตอนการสร้างมนุษย์",
			Content:         "แล้วเราได้ทำให้นุฏฟะฮ์เป็นอะละเกาะฮ์ แล้วเราได้ทำให้อะละเกาะฮ์เป็นมุฎเฆาะฮ์",
			ContentArabic:   ptr("ثُمَّ خَلَقْنَا النُّطْفَةَ عَلَقَةً فَخَلَقْنَا الْعَلَقَةَ مُضْغَةً"),
			Source:          "ซูเราะฮ์อัลมุอ์มินูน 23:14",
			IsAuthenticated: true, Order: 1,
			CreatedAt: date("2024-05-01T09:00:00Z"), UpdatedAt: date("2024-05-01T09:00:00Z"),
		},
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000008"), TopicID: TopicEmbryologyID,
			Type:            domain.EvidenceScientific,
			Title:           "สัณฐานของเอ็มบริโอระยะแรก",
			Content:         "เอ็มบริโอช่วงสัปดาห์ที่ 4 มีลักษณะเกาะติดผนังมดลูกคล้ายปลิง สอดคล้องกับความหมายของอะละเกาะฮ์",
			Source:          "Keith L. Moore, The Developing Human",
			IsAuthenticated: false, Order: 2,
			CreatedAt: date("2024-05-02T09:00:00Z"), UpdatedAt: date("2024-05-02T09:00:00Z"),
		},
		{
			ID: uuid.MustParse("22222222-bbbb-4ccc-8ddd-000000000009"), TopicID: TopicApostasyID,
			Type:  domain.EvidenceQuran,
			Title: "ไม่มีการบังคับในศาสนา", TitleArabic: ptr("لَا إِكْرَاهَ فِي الدِّينِ"),
			Content:         "ไม่มีการบังคับใด ๆ ในศาสนา แท้จริงแนวทางที่ถูกต้องได้เป็นที่กระจ่างแจ้งแล้วจากแนวทางที่หลงผิด",
			ContentArabic:   ptr("لَا إِكْرَاهَ فِي الدِّينِ قَد تَّبَيَّنَ الرُّشْدُ مِنَ الْغَيِّ"),
			Source:          "ซูเราะฮ์อัลบะเกาะเราะฮ์ 2:256",
			IsAuthenticated: true, Order: 1,
			CreatedAt: date("2024-06-20T09:00:00Z"), UpdatedAt: date("2024-06-20T09:00:00Z"),
		},
	}
}
