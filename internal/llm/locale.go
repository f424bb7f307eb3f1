package llm

import "vakeel-api/internal/domain"

var systemPrompts = map[domain.Language]string{
	domain.LanguageEnglish: `You are VakeelGPT, an expert Indian legal AI assistant. You provide accurate, helpful legal information in simple terms.

Key Guidelines:
- Always clarify that you provide general legal information, not legal advice
- Reference relevant Indian laws (IPC, CrPC, CPC, Constitution, etc.)
- Explain complex legal concepts in simple language
- Suggest consulting a qualified lawyer for specific cases
- Be culturally sensitive to Indian legal practices
- Support document drafting with standard Indian legal formats`,

	domain.LanguageHindi: `आप VakeelGPT हैं, एक विशेषज्ञ भारतीय कानूनी AI सहायक। आप सटीक, उपयोगी कानूनी जानकारी सरल शब्दों में प्रदान करते हैं।

मुख्य दिशानिर्देश:
- हमेशा स्पष्ट करें कि आप सामान्य कानूनी जानकारी प्रदान करते हैं, कानूनी सलाह नहीं
- प्रासंगिक भारतीय कानूनों का संदर्भ दें (IPC, CrPC, CPC, संविधान, आदि)
- जटिल कानूनी अवधारणाओं को सरल भाषा में समझाएं
- विशिष्ट मामलों के लिए योग्य वकील से सलाह लेने का सुझाव दें`,

	domain.LanguageTamil:   `நீங்கள் VakeelGPT, ஒரு நிபுணத்துவம் வாய்ந்த இந்திய சட்ட AI உதவியாளர். நீங்கள் துல்லியமான, பயனுள்ள சட்ட தகவல்களை எளிய சொற்களில் வழங்குகிறீர்கள்.`,
	domain.LanguageTelugu:  `మీరు VakeelGPT, ఒక నిపుణుడైన భారతీయ న్యాయ AI సహాయకుడు. మీరు ఖచ్చితమైన, ఉపయోగకరమైన న్యాయ సమాచారాన్ని సాధారణ పదాలలో అందిస్తారు.`,
	domain.LanguageBengali: `আপনি VakeelGPT, একজন বিশেষজ্ঞ ভারতীয় আইনি AI সহায়ক। আপনি নির্ভুল, সহায়ক আইনি তথ্য সহজ ভাষায় প্রদান করেন।`,
}

var fallbackResponses = map[domain.Language]string{
	domain.LanguageEnglish: "I'm experiencing technical difficulties. Please try again in a moment or contact support if the issue persists.",
	domain.LanguageHindi:   "मुझे तकनीकी कठिनाइयों का सामना करना पड़ रहा है। कृपया एक क्षण में फिर से कोशिश करें।",
	domain.LanguageTamil:   "எனக்கு தொழில்நுட்ப சிக்கல்கள் உள்ளன. தயவுசெய்து சற்று நேரத்தில் மீண்டும் முயற்சிக்கவும்.",
	domain.LanguageTelugu:  "నాకు సాంకేతిక ఇబ్బందులు ఉన్నాయి. దయచేసి ఒక క్షణంలో మళ్ళీ ప్రయత్నించండి.",
	domain.LanguageBengali: "আমার প্রযুক্তিগত সমস্যা হচ্ছে। দয়া করে একটু পরে আবার চেষ্টা করুন।",
}

// Solo hay textos simulados para en y hi; el resto cae en ingles.
var mockResponses = map[domain.Language]map[domain.MessageKind]string{
	domain.LanguageEnglish: {
		domain.KindGeneral:       "I understand you're asking about Indian legal matters. While I'd love to provide specific guidance, I recommend consulting with a qualified lawyer for personalized advice. For general information, you can refer to Indian legal resources or contact your local legal aid center.",
		domain.KindDocumentDraft: "Here's a basic template for your legal document. Please note that this is a general format and should be reviewed by a legal professional:\n\n[DOCUMENT TEMPLATE]\n\nThis document is created on [DATE] between [PARTY 1] and [PARTY 2].\n\n[Standard legal clauses would appear here]\n\nPlease consult a lawyer to customize this document for your specific needs.",
	},
	domain.LanguageHindi: {
		domain.KindGeneral:       "मैं समझता हूं कि आप भारतीय कानूनी मामलों के बारे में पूछ रहे हैं। जबकि मैं विशिष्ट मार्गदर्शन प्रदान करना चाहूंगा, मैं व्यक्तिगत सलाह के लिए एक योग्य वकील से सलाह लेने की सलाह देता हूं।",
		domain.KindDocumentDraft: "यहां आपके कानूनी दस्तावेज़ के लिए एक बुनियादी टेम्प्लेट है। कृपया ध्यान दें कि यह एक सामान्य प्रारूप है और इसकी समीक्षा एक कानूनी पेशेवर द्वारा की जानी चाहिए।",
	},
}

// SystemPrompt devuelve el prompt de sistema del idioma, o el ingles.
func SystemPrompt(lang domain.Language) string {
	if p, ok := systemPrompts[lang]; ok {
		return p
	}
	return systemPrompts[domain.DefaultLanguage]
}

// FallbackResponse es el texto que ve el usuario cuando el LLM falla.
func FallbackResponse(lang domain.Language) string {
	if r, ok := fallbackResponses[lang]; ok {
		return r
	}
	return fallbackResponses[domain.DefaultLanguage]
}

// MockResponse es la respuesta simulada cuando no hay API key configurada.
// Tipos sin texto propio (document_review) usan el de general.
func MockResponse(lang domain.Language, kind domain.MessageKind) string {
	byKind, ok := mockResponses[lang]
	if !ok {
		byKind = mockResponses[domain.DefaultLanguage]
	}
	if r, ok := byKind[kind]; ok {
		return r
	}
	return byKind[domain.KindGeneral]
}
