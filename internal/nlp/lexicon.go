package nlp

// functionWords is the closed class of Russian words that never qualify as
// keywords: prepositions, conjunctions, particles, pronouns, adverbs.
var functionWords = []string{
	"и", "а", "но", "или", "либо", "если", "то", "же", "ли", "бы", "не", "ни",
	"в", "во", "на", "по", "с", "со", "к", "ко", "у", "о", "об", "обо",
	"от", "до", "за", "из", "изо", "над", "под", "при", "про", "для",
	"без", "через", "между", "перед", "после",
	"я", "ты", "он", "она", "оно", "мы", "вы", "они",
	"мой", "моя", "моё", "мои", "твой", "наш", "ваш", "свой",
	"его", "её", "ее", "их", "мне", "меня", "тебе", "тебя", "нам", "нас",
	"кто", "что", "чем", "чему", "кого", "кому",
	"это", "этот", "эта", "эти", "тот", "та", "те",
	"когда", "где", "куда", "откуда", "зачем", "почему", "как", "сколько",
	"какой", "какая", "какое", "какие", "который", "которая",
	"так", "там", "тут", "здесь", "уже", "ещё", "еще", "очень", "тоже",
	"также", "только", "можно", "нужно", "нужен", "нужна", "нужны",
	"надо", "нельзя", "вот", "да", "нет",
	"будет", "был", "была", "было", "были", "есть", "быть",
	"пожалуйста", "спасибо", "здравствуйте", "привет",
	"завтра", "сегодня", "вчера", "скоро",
}

// builtinLexicon covers the academic domain vocabulary with the inflected
// forms students actually type. The lemma itself is always a valid form.
var builtinLexicon = []LexiconEntry{
	// Subjects
	{Lemma: "математика", POS: Noun, Forms: []string{
		"математики", "математике", "математику", "математикой", "математиках"}},
	{Lemma: "информатика", POS: Noun, Forms: []string{
		"информатики", "информатике", "информатику", "информатикой"}},
	{Lemma: "физика", POS: Noun, Forms: []string{
		"физики", "физике", "физику", "физикой"}},
	{Lemma: "программирование", POS: Noun, Forms: []string{
		"программирования", "программированию", "программированием", "программировании"}},
	{Lemma: "алгебра", POS: Noun, Forms: []string{
		"алгебры", "алгебре", "алгебру", "алгеброй"}},
	{Lemma: "анализ", POS: Noun, Forms: []string{
		"анализа", "анализу", "анализом", "анализе"}},
	{Lemma: "геометрия", POS: Noun, Forms: []string{
		"геометрии", "геометрию", "геометрией"}},

	// Recommendation triggers
	{Lemma: "экзамен", POS: Noun, Forms: []string{
		"экзамена", "экзамену", "экзаменом", "экзамене",
		"экзамены", "экзаменов", "экзаменам", "экзаменах"}},
	{Lemma: "задание", POS: Noun, Forms: []string{
		"задания", "заданию", "заданием", "задании",
		"заданий", "заданиям", "заданиях"}},
	{Lemma: "расписание", POS: Noun, Forms: []string{
		"расписания", "расписанию", "расписанием", "расписании"}},
	{Lemma: "консультация", POS: Noun, Forms: []string{
		"консультации", "консультацию", "консультацией", "консультаций", "консультациям"}},
	{Lemma: "материал", POS: Noun, Forms: []string{
		"материала", "материалу", "материалом", "материале",
		"материалы", "материалов", "материалам", "материалами", "материалах"}},
	{Lemma: "практика", POS: Noun, Forms: []string{
		"практики", "практике", "практику", "практикой"}},
	{Lemma: "мотивация", POS: Noun, Forms: []string{
		"мотивации", "мотивацию", "мотивацией"}},
	{Lemma: "проект", POS: Noun, Forms: []string{
		"проекта", "проекту", "проектом", "проекте",
		"проекты", "проектов", "проектам", "проектах"}},
	{Lemma: "литература", POS: Noun, Forms: []string{
		"литературы", "литературе", "литературу", "литературой"}},
	{Lemma: "группа", POS: Noun, Forms: []string{
		"группы", "группе", "группу", "группой", "групп", "группам", "группах"}},

	// Common academic nouns
	{Lemma: "лекция", POS: Noun, Forms: []string{
		"лекции", "лекцию", "лекцией", "лекций", "лекциям", "лекциях"}},
	{Lemma: "семинар", POS: Noun, Forms: []string{
		"семинара", "семинару", "семинаром", "семинаре", "семинары", "семинаров"}},
	{Lemma: "сессия", POS: Noun, Forms: []string{
		"сессии", "сессию", "сессией", "сессий"}},
	{Lemma: "зачёт", POS: Noun, Forms: []string{
		"зачет", "зачёта", "зачета", "зачёту", "зачету", "зачётом", "зачетом", "зачёте", "зачете"}},
	{Lemma: "преподаватель", POS: Noun, Forms: []string{
		"преподавателя", "преподавателю", "преподавателем", "преподавателе",
		"преподаватели", "преподавателей"}},
	{Lemma: "студент", POS: Noun, Forms: []string{
		"студента", "студенту", "студентом", "студенте",
		"студенты", "студентов", "студентам", "студентах"}},
	{Lemma: "университет", POS: Noun, Forms: []string{
		"университета", "университету", "университетом", "университете"}},
	{Lemma: "деканат", POS: Noun, Forms: []string{
		"деканата", "деканату", "деканатом", "деканате"}},
	{Lemma: "курс", POS: Noun, Forms: []string{
		"курса", "курсу", "курсом", "курсе", "курсы", "курсов", "курсам"}},
	{Lemma: "вопрос", POS: Noun, Forms: []string{
		"вопроса", "вопросу", "вопросом", "вопросе", "вопросы", "вопросов", "вопросам"}},
	{Lemma: "книга", POS: Noun, Forms: []string{
		"книги", "книге", "книгу", "книгой", "книг", "книгам", "книгах"}},
	{Lemma: "учебник", POS: Noun, Forms: []string{
		"учебника", "учебнику", "учебником", "учебнике", "учебники", "учебников"}},
	{Lemma: "библиотека", POS: Noun, Forms: []string{
		"библиотеки", "библиотеке", "библиотеку", "библиотекой"}},
	{Lemma: "помощь", POS: Noun, Forms: []string{"помощи", "помощью"}},
	{Lemma: "дедлайн", POS: Noun, Forms: []string{
		"дедлайна", "дедлайну", "дедлайном", "дедлайне", "дедлайны", "дедлайнов"}},

	// Common verbs
	{Lemma: "сдать", POS: Verb, Forms: []string{
		"сдам", "сдашь", "сдаст", "сдадим", "сдадите", "сдадут",
		"сдал", "сдала", "сдали"}},
	{Lemma: "сдавать", POS: Verb, Forms: []string{
		"сдаю", "сдаёшь", "сдаешь", "сдаёт", "сдает", "сдаём", "сдаем", "сдают",
		"сдавал", "сдавала", "сдавали"}},
	{Lemma: "учить", POS: Verb, Forms: []string{
		"учу", "учишь", "учит", "учим", "учите", "учат", "учил", "учила", "учили"}},
	{Lemma: "учиться", POS: Verb, Forms: []string{
		"учусь", "учишься", "учится", "учимся", "учитесь", "учатся"}},
	{Lemma: "готовиться", POS: Verb, Forms: []string{
		"готовлюсь", "готовишься", "готовится", "готовимся", "готовитесь", "готовятся",
		"готовился", "готовилась", "готовились"}},
	{Lemma: "найти", POS: Verb, Forms: []string{
		"найду", "найдёшь", "найдешь", "найдёт", "найдет", "найдём", "найдем", "найдут",
		"нашёл", "нашел", "нашла", "нашли"}},
	{Lemma: "посоветовать", POS: Verb, Forms: []string{
		"посоветую", "посоветуешь", "посоветует", "посоветуйте"}},
	{Lemma: "начать", POS: Verb, Forms: []string{
		"начну", "начнёшь", "начнешь", "начнёт", "начнет", "начнут",
		"начал", "начала", "начали"}},
	{Lemma: "помочь", POS: Verb, Forms: []string{
		"помогу", "поможешь", "поможет", "поможем", "помогут", "помоги", "помогите"}},
}
