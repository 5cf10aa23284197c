package skill

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

const (
	meteorThreshold = 50
	meteorDamage    = 20
)

type scarnel struct {
	baseHandler
}

func newScarnel() *scarnel {
	return &scarnel{baseHandler{name: entities.SkillScarnel}}
}

func (h *scarnel) Activate(ctx context.Context, s *Scope) ([]string, error) {
	target := s.Instance.TargetID
	if target == "" || target == s.Instance.UserID || target == entities.TargetAllUsers {
		return nil, apperr.InvalidArgument("스카넬은 함께할 다른 대상이 필요합니다")
	}
	s.effects().ScarnelBond = &entities.BondEffect{
		CasterID:  s.Instance.UserID,
		PartnerID: target,
	}
	return []string{fmt.Sprintf("☄️ %s과(와) %s이(가) 스카넬의 유대로 묶였습니다!", s.Instance.UserName, s.name(ctx, target))}, nil
}

// ShareDamage splits damage to either bonded player evenly between them
func (h *scarnel) ShareDamage(ctx context.Context, s *Scope, victimID string, amount int) (int, []DamageShare, string) {
	bond := s.effects().ScarnelBond
	if bond == nil || amount <= 0 {
		return amount, nil, ""
	}

	var partner string
	switch victimID {
	case bond.CasterID:
		partner = bond.PartnerID
	case bond.PartnerID:
		partner = bond.CasterID
	default:
		return amount, nil, ""
	}
	if info, err := s.Arena.UserInfo(ctx, s.ChannelID, partner); err != nil || info == nil || info.IsEliminated {
		return amount, nil, ""
	}

	if bond.Carry == nil {
		bond.Carry = make(map[string]int)
	}
	half := amount / 2
	bond.Carry[victimID] += amount - half
	bond.Carry[partner] += half

	victimHits, partnerHits := splitHits((amount+9)/10, bond.Carry[victimID], bond.Carry[partner])
	bond.Carry[victimID] -= victimHits * 10
	bond.Carry[partner] -= partnerHits * 10

	keep := victimHits * 10
	var shares []DamageShare
	if partnerHits > 0 {
		shares = []DamageShare{{UserID: partner, Amount: partnerHits * 10, Source: h.name}}
	}
	return keep, shares, fmt.Sprintf("☄️ 스카넬의 유대로 피해가 나뉩니다! (%s %d / %s %d)",
		s.name(ctx, victimID), victimHits, s.name(ctx, partner), partnerHits)
}

// splitHits hands out total whole hits by the damage each side has banked.
// The side with more banked damage takes an odd hit, the victim on a tie.
func splitHits(total, victimCarry, partnerCarry int) (int, int) {
	victim, partner := max(victimCarry, 0)/10, max(partnerCarry, 0)/10
	for victim+partner > total {
		if partner > 0 && (victimCarry-victim*10 >= partnerCarry-partner*10 || victim == 0) {
			partner--
		} else {
			victim--
		}
	}
	for victim+partner < total {
		if partnerCarry-partner*10 > victimCarry-victim*10 {
			partner++
		} else {
			victim++
		}
	}
	return victim, partner
}

// OnSkillEnd drops a meteor when the bond wears off
func (h *scarnel) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	s.effects().Clear(entities.EffectScarnelBond)
	if cancelled {
		return nil
	}

	living := s.livingUsers(ctx)
	if len(living) == 0 {
		return nil
	}

	lines := []string{"☄️ 스카넬의 운석이 떨어집니다!"}
	for _, p := range living {
		value := s.percent()
		if value >= meteorThreshold {
			lines = append(lines, fmt.Sprintf("• %s: %d - 회피!", p.Name, value))
			continue
		}
		if _, err := s.Arena.DamageUser(ctx, s.ChannelID, p.UserID, meteorDamage); err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s: %d - %d 피해!", p.Name, value, meteorDamage))
	}
	return []string{strings.Join(lines, "\n")}
}
