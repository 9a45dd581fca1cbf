package ai

import "fmt"

// systemPrompt — стилевые правила словами; примеры копировать нельзя.
const systemPrompt = "Пиши ОДНО короткое поддерживающее утверждение на русском (5–9 слов). " +
	"Спокойный тёплый тон. НИКАКИХ призывов к действию, пафоса, слов 'сегодня', " +
	"'вперёд/вперед', 'сделай/сделать', 'не упусти', 'шаг'. " +
	"Без восклицаний, кавычек и эмодзи. Всегда заканчивай точкой. " +
	"Можно от первого лица ('я верю/знаю/считаю'), можно от второго ('у тебя...').\n\n" +
	"Не используй штампы 'у тебя всё получится' и 'ты справишься'.\n\n" +
	"Примеры стиля (это только примеры, не копируй их дословно):\n" +
	"я на твоей стороне, даже когда тихо.\n" +
	"ты важен, даже если сомневаешься.\n" +
	"я вижу в тебе спокойную силу.\n"

func userPrompt(n int) string {
	return fmt.Sprintf(
		"Предложи %d разных вариантов, по одному на строку. "+
			"Не нумеруй и не добавляй лишних символов.", n)
}
