package agent

import (
	"fmt"
	"strings"

	"z-blog-ai-api/internal/domain/entity"
)

// LengthInstructions 生成长度指令文案，交由提示词模板插值
func LengthInstructions(l entity.Length) string {
	return fmt.Sprintf(
		"El artículo debe tener aproximadamente %d palabras, manteniendo la profundidad adecuada para esa extensión.",
		l.WordTarget(),
	)
}

var styleDescriptions = map[entity.Style]string{
	entity.StyleInformative: "Informativo: presenta datos, hechos y contexto con objetividad y claridad.",
	entity.StylePersuasive:  "Persuasivo: argumenta con convicción y estructura los puntos para influir en la opinión del lector.",
	entity.StyleNarrative:   "Narrativo: apoya las ideas en historias, ejemplos y un hilo conductor reconocible.",
	entity.StyleTechnical:   "Técnico: profundiza en los detalles técnicos con precisión, rigor y terminología correcta.",
}

// StyleInstructions 把风格集合展开为逐条指令
func StyleInstructions(styles []entity.Style) string {
	if len(styles) == 0 {
		styles = []entity.Style{entity.StyleInformative}
	}
	lines := make([]string, 0, len(styles)+1)
	lines = append(lines, "El artículo debe combinar los siguientes estilos:")
	for _, s := range styles {
		desc, ok := styleDescriptions[s]
		if !ok {
			continue
		}
		lines = append(lines, "- "+desc)
	}
	return strings.Join(lines, "\n")
}

// CustomPromptBlock 自定义指令块；为空时返回空串避免模板出现孤立段落
func CustomPromptBlock(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return "Instrucciones adicionales del usuario:\n" + p
}
