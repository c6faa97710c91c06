package pkg

import (
	"time"
)

// AddMonths avança a data em meses de calendário, fixando o dia no último
// dia do mês quando o mês de destino é mais curto (31/01 + 1 mês = 28/02).
func AddMonths(date time.Time, months int) time.Time {
	anchor := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	target := anchor.AddDate(0, months, 0)

	lastDay := time.Date(target.Year(), target.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
	day := date.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(target.Year(), target.Month(), day,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// NextBusinessDay retorna o próximo dia útil estritamente após a data.
func NextBusinessDay(date time.Time) time.Time {
	next := date.AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// IsRepresentableDate delimita o intervalo de datas aceito pelas colunas
// de vencimento (tipo date no Postgres não cobre anos fora de 1..9999).
func IsRepresentableDate(date time.Time) bool {
	year := date.Year()
	return year >= 1 && year <= 9999
}

// TruncateToDay fixa a meia-noite UTC do dia de calendário da data, qualquer
// que seja o fuso de origem. A diferença entre duas datas truncadas é sempre
// um número inteiro de dias.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
