package payable

import (
	"regexp"
	"strconv"

	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

// Expand transforma o template em uma série de repeat+1 contas. Com repeat
// zero o template volta intocado, sem grupo. Com repeat positivo a série
// ganha um GroupId novo; a irmã k vence k meses de calendário após o
// template (dia fixado no fim do mês quando necessário), sempre PENDING e
// sem data de pagamento. O template é a parcela 1.
func Expand(template *Bill, repeat int) ([]*Bill, error) {
	if repeat < 0 {
		return nil, appErrors.NewValidationError("repeat", "deve ser maior ou igual a zero")
	}

	if repeat == 0 {
		return []*Bill{template}, nil
	}

	groupID := pkg.GenerateULIDObject()
	total := repeat + 1

	template.GroupId = &groupID
	template.InstallmentIndex = 1
	template.InstallmentTotal = total

	bills := make([]*Bill, 0, total)
	bills = append(bills, template)

	for k := 1; k <= repeat; k++ {
		dueDate := pkg.AddMonths(template.DueDate, k)
		if !pkg.IsRepresentableDate(dueDate) {
			return nil, appErrors.ErrInvalidDate
		}

		sibling := &Bill{
			Id:               pkg.GenerateULIDObject(),
			Description:      template.Description,
			Notes:            template.Notes,
			Amount:           template.Amount,
			DueDate:          dueDate,
			Status:           StatusPending,
			Category:         template.Category,
			Creditor:         template.Creditor,
			GroupId:          &groupID,
			InstallmentIndex: k + 1,
			InstallmentTotal: total,
			AccountId:        template.AccountId,
			CreatedAt:        template.CreatedAt,
			UpdatedAt:        template.UpdatedAt,
		}
		bills = append(bills, sibling)
	}

	return bills, nil
}

// Registros antigos não tinham group_id: a série era inferida pelo marcador
// "(k/n)" anotado nas observações. O parse vive só aqui, como leitura de
// compatibilidade; todo código novo depende do group_id armazenado.
var legacySeriesMarker = regexp.MustCompile(`\((\d+)/(\d+)\)\s*$`)

func parseLegacySeriesMarker(notes string) (index, total int, ok bool) {
	match := legacySeriesMarker.FindStringSubmatch(notes)
	if match == nil {
		return 0, 0, false
	}

	index, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, false
	}
	total, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	if index < 1 || total < 1 || index > total {
		return 0, 0, false
	}
	return index, total, true
}
