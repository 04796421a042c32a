package yunhu

import "github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"

// 群成员变更的 sub_type。
const (
	SubTypeJoin  = "join"
	SubTypeLeave = "leave"
)

// mapLifecycle 处理关注/取关与入群/退群，全部映射为标准 notice，不产生扩展字段。
func mapLifecycle(env Envelope, ev *onebot.Event) error {
	body := env.Body
	ev.Type = onebot.TypeNotice
	ev.UserID = stringField(body, "userId")
	ev.Nickname = stringField(body, "nickname")

	switch env.Header.EventType {
	case EventBotFollowed, EventBotUnfollowed:
		ev.DetailType = onebot.DetailFriendDecrease
		if env.Header.EventType == EventBotFollowed {
			ev.DetailType = onebot.DetailFriendIncrease
		}
		if chatID := stringField(body, "chatId"); chatID != "" {
			ev.Self.UserID = chatID
		}
	case EventGroupJoin, EventGroupLeave:
		ev.DetailType = onebot.DetailGroupMemberDecrease
		ev.SubType = SubTypeLeave
		if env.Header.EventType == EventGroupJoin {
			ev.DetailType = onebot.DetailGroupMemberIncrease
			ev.SubType = SubTypeJoin
		}
		ev.GroupID = stringField(body, "chatId")
		operator := ""
		ev.OperatorID = &operator
	default:
		return malformed("%s: not a lifecycle event", env.Header.EventType)
	}
	return nil
}
