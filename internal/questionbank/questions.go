package questionbank

import "wordkingdom/internal/models"

var worldQuestions = map[models.WorldKey][]models.Question{
	models.WorldHamzat: {
		{
			Text:         "اختر الهمزة الصحيحة: (  _مـ ــــ ـــــ ـــــ ) البحر",
			Options:      []string{"أ", "إ", "ؤ", "ئ"},
			CorrectIndex: 0,
			Hint:         "الهمزة في أول الكلمة تأخذ شكل الألف إذا كانت مفتوحة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (مسـ _ ــــ ـــة) جميلة",
			Options:      []string{"أ", "إ", "ئ"},
			CorrectIndex: 2,
			Hint:         "الهمزة على نبرة تكتب على ياء عندما تأتي بعد ساكن",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (مسـ _ ــؤولة)",
			Options:      []string{"أ", "ؤ", "ئ"},
			CorrectIndex: 1,
			Hint:         "الهمزة على واو تكتب على واو عندما تأتي مضمومة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (يسـ _ ــأل)",
			Options:      []string{"أ", "إ", "ئ"},
			CorrectIndex: 0,
			Hint:         "الهمزة في أول الكلمة تأخذ شكل الألف إذا كانت مفتوحة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (مـ _ ــمنين)",
			Options:      []string{"ؤ", "ئ", "إ"},
			CorrectIndex: 2,
			Hint:         "الهمزة في أول الكلمة تكتب تحت الألف إذا كانت مكسورة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (أحمد)",
			Options:      []string{"أ", "إ", "ؤ"},
			CorrectIndex: 0,
			Hint:         "الهمزة في أول الكلمة تأخذ شكل الألف إذا كانت مفتوحة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (إسلام)",
			Options:      []string{"أ", "إ", "ؤ"},
			CorrectIndex: 1,
			Hint:         "الهمزة في أول الكلمة تأخذ شكل الألف إذا كانت مكسورة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (ؤمن)",
			Options:      []string{"أ", "إ", "ؤ"},
			CorrectIndex: 2,
			Hint:         "الهمزة على واو تكتب على واو عندما تأتي مضمومة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (ئد)",
			Options:      []string{"أ", "إ", "ئ"},
			CorrectIndex: 2,
			Hint:         "الهمزة على ياء تكتب على ياء عندما تأتي بعد ساكن",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الهمزة الصحيحة: (أب)",
			Options:      []string{"أ", "إ", "ؤ"},
			CorrectIndex: 0,
			Hint:         "الهمزة في أول الكلمة تأخذ شكل الألف إذا كانت مفتوحة",
			Type:         models.QuestionSpelling,
		},
	},

	models.WorldTaa: {
		{
			Text:         "اختر التاء الصحيحة: مدرسـ _",
			Options:      []string{"ة", "ت"},
			CorrectIndex: 0,
			Hint:         "التاء المربوطة تأتي في نهاية الأسماء المؤنثة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: بنـ _",
			Options:      []string{"ة", "ت"},
			CorrectIndex: 0,
			Hint:         "التاء المربوطة تأتي في نهاية الأسماء المؤنثة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: بنـ _",
			Options:      []string{"ات", "ة"},
			CorrectIndex: 0,
			Hint:         "جمع المؤنث السالم ينتهي بـ (ات)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: مكـ _",
			Options:      []string{"ة", "ت"},
			CorrectIndex: 1,
			Hint:         "التاء المفتوحة تأتي في الأفعال",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: أصـدقـ _",
			Options:      []string{"ة", "اء", "ت"},
			CorrectIndex: 2,
			Hint:         "جمع المذكر السالم ينتهي بـ (ون) أو (ين)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: فاتـ _",
			Options:      []string{"ة", "ت"},
			CorrectIndex: 1,
			Hint:         "التاء المفتوحة تأتي في الأفعال",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: قالت",
			Options:      []string{"ة", "ت"},
			CorrectIndex: 1,
			Hint:         "التاء المفتوحة تأتي في الأفعال",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: جلبت",
			Options:      []string{"ة", "ت"},
			CorrectIndex: 1,
			Hint:         "التاء المفتوحة تأتي في الأفعال",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: كتبت",
			Options:      []string{"ة", "ت"},
			CorrectIndex: 1,
			Hint:         "التاء المفتوحة تأتي في الأفعال",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر التاء الصحيحة: قرأت",
			Options:      []string{"ة", "ت"},
			CorrectIndex: 1,
			Hint:         "التاء المفتوحة تأتي في الأفعال",
			Type:         models.QuestionSpelling,
		},
	},

	models.WorldAlif: {
		{
			Text:         "اختر الشكل الصحيح: دعـ _",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 1,
			Hint:         "الألف اللينة في آخر الأسماء تكتب على صورة ياء غير منقوطة (ى)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: هديـ _",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 1,
			Hint:         "الألف اللينة في آخر الأسماء تكتب على صورة ياء غير منقوطة (ى)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: سماـ _",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 0,
			Hint:         "الألف اللينة في آخر الأفعال تكتب على صورة ألف (ا)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: عصـ _",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 0,
			Hint:         "الألف اللينة في آخر الأفعال تكتب على صورة ألف (ا)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: فتى الصغير",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 1,
			Hint:         "الألف اللينة في آخر الأسماء تكتب على صورة ياء غير منقوطة (ى)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: قام",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 0,
			Hint:         "الألف اللينة في آخر الأفعال تكتب على صورة ألف (ا)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: جري",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 0,
			Hint:         "الألف اللينة في آخر الأفعال تكتب على صورة ألف (ا)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: كتب",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 0,
			Hint:         "الألف اللينة في آخر الأفعال تكتب على صورة ألف (ا)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: قرأ",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 0,
			Hint:         "الألف اللينة في آخر الأفعال تكتب على صورة ألف (ا)",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "اختر الشكل الصحيح: دعا",
			Options:      []string{"ا", "ى"},
			CorrectIndex: 0,
			Hint:         "الألف اللينة في آخر الأفعال تكتب على صورة ألف (ا)",
			Type:         models.QuestionSpelling,
		},
	},

	models.WorldPunctuation: {
		{
			Text:         "ذهبت إلى المدرسة مبكرًا",
			Options:      []string{".", "؟", "!"},
			CorrectIndex: 0,
			Hint:         "النقطة تأتي في نهاية الجملة الخبرية",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "هل تحب القراءة",
			Options:      []string{".", "؟", "!"},
			CorrectIndex: 1,
			Hint:         "علامة الاستفهام تأتي في نهاية الجملة الاستفهامية",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "ما أجمل الطبيعة",
			Options:      []string{".", "؟", "!"},
			CorrectIndex: 2,
			Hint:         "علامة التعجب تأتي في نهاية الجملة التعجبية",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "أحضرَ عليٌّ القلم الدفتر الحقيبة",
			Options:      []string{",", "؛", "."},
			CorrectIndex: 2,
			Hint:         "الفاصلة المنقوطة تفصل بين جمل طويلة مترابطة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "انتبه الطريق مزدحم",
			Options:      []string{".", "؟", "!"},
			CorrectIndex: 2,
			Hint:         "علامة التعجب تأتي في نهاية الجملة الإنشائية الطلبية",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "ذهب إلى المدرسة",
			Options:      []string{".", "؟", "!"},
			CorrectIndex: 0,
			Hint:         "النقطة تأتي في نهاية الجملة الخبرية",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "ماذا فعلت اليوم",
			Options:      []string{".", "؟", "!"},
			CorrectIndex: 1,
			Hint:         "علامة الاستفهام تأتي في نهاية الجملة الاستفهامية",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "ما أجمل هذا اليوم",
			Options:      []string{".", "؟", "!"},
			CorrectIndex: 2,
			Hint:         "علامة التعجب تأتي في نهاية الجملة التعجبية",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "ذهب إلى المدرسة، ثم ذهب إلى البيت",
			Options:      []string{",", "؛", "."},
			CorrectIndex: 0,
			Hint:         "الفاصلة تفصل بين جمل قصيرة مترابطة",
			Type:         models.QuestionSpelling,
		},
		{
			Text:         "انتبه! الطريق مزدحم",
			Options:      []string{".", "؟", "!"},
			CorrectIndex: 2,
			Hint:         "علامة التعجب تأتي في نهاية الجملة الإنشائية الطلبية",
			Type:         models.QuestionSpelling,
		},
	},

	models.WorldCreative: {
		{
			Text:         "شيء له أسنان كثيرة لكنه لا يعض، ما هو؟",
			Options:      []string{"المشط", "الأسد", "الفرشاة"},
			CorrectIndex: 0,
			Hint:         "يستخدمه الناس لترتيب الشعر",
			Type:         models.QuestionImagination,
		},
		{
			Text:         "شيء نراه في الليل فقط، ما هو؟",
			Options:      []string{"الشمس", "القمر", "البحر"},
			CorrectIndex: 1,
			Hint:         "يظهر في السماء ليلاً ويعكس ضوء الشمس",
			Type:         models.QuestionImagination,
		},
		{
			Text:         "شيء يمشي بلا قدمين، ويبكي بلا عينين، ما هو؟",
			Options:      []string{"السحابة", "النهر", "الهواء"},
			CorrectIndex: 1,
			Hint:         "جسم مائي يجري بين الضفتين",
			Type:         models.QuestionImagination,
		},
		{
			Text:         "ما هو الشيء الذي يبدأ بالحرف (أ) وينتهي بالحرف (ة)؟",
			Options:      []string{"الأرض", "السماء", "البحر"},
			CorrectIndex: 0,
			Hint:         "يحيط بالكرة الأرضية",
			Type:         models.QuestionImagination,
		},
		{
			Text:         "ما هو الشيء الذي يبدأ بالحرف (ب) وينتهي بالحرف (ة)؟",
			Options:      []string{"البحر", "البرق", "البقرة"},
			CorrectIndex: 0,
			Hint:         "جسم مائي كبير",
			Type:         models.QuestionImagination,
		},
		{
			Text:         "ما هو الشيء الذي يبدأ بالحرف (ت) وينتهي بالحرف (ة)؟",
			Options:      []string{"التوت", "التفاحة", "التمرة"},
			CorrectIndex: 0,
			Hint:         "فاكهة حلوة",
			Type:         models.QuestionImagination,
		},
		{
			Text:         "ما هو الشيء الذي يبدأ بالحرف (ث) وينتهي بالحرف (ة)؟",
			Options:      []string{"الثعلب", "الثلج", "الثمرة"},
			CorrectIndex: 0,
			Hint:         "حيوان مفترس",
			Type:         models.QuestionImagination,
		},
		{
			Text:         "ما هو الشيء الذي يبدأ بالحرف (ج) وينتهي بالحرف (ة)؟",
			Options:      []string{"الجبل", "الجسر", "الجنة"},
			CorrectIndex: 0,
			Hint:         "مكان مرتفع",
			Type:         models.QuestionImagination,
		},
		{
			Text:         "ما هو الشيء الذي يبدأ بالحرف (ح) وينتهي بالحرف (ة)؟",
			Options:      []string{"الحوت", "الحمامة", "الحنة"},
			CorrectIndex: 0,
			Hint:         "حيوان بحري كبير",
			Type:         models.QuestionImagination,
		},
		{
			Text: "أخبرني قصة قصيرة عن مغامرة في المملكة",
			Hint: "يمكنك استخدام الخيال والإبداع في كتابة قصتك",
			Type: models.QuestionCreative,
		},
	},
}
