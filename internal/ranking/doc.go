// Package ranking 实现推荐管线中的纯函数部分：时长解析、短视频过滤、
// 相关度打分与分层洗牌。包内不做 I/O，随机源与时钟均由调用方注入。
package ranking
